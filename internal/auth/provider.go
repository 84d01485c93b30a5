// Package auth is the mock authentication collaborator: plain credentials
// checked synchronously against the seeded accounts. Real authentication
// (hashing, tokens) is deliberately absent from this core.
package auth

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/nurpe/freightops/internal/model"
	"github.com/nurpe/freightops/internal/repository"
	"github.com/nurpe/freightops/internal/service"
	"github.com/nurpe/freightops/internal/session"
)

type Provider struct {
	users    *repository.UserRepository
	sessions *session.Store
	activity *service.ActivityService
	log      zerolog.Logger

	mu        sync.RWMutex
	passwords map[string]string // email -> plain mock password
}

func NewProvider(users *repository.UserRepository, sessions *session.Store, activity *service.ActivityService, log zerolog.Logger) *Provider {
	return &Provider{
		users:     users,
		sessions:  sessions,
		activity:  activity,
		log:       log,
		passwords: make(map[string]string),
	}
}

func (p *Provider) SetCredential(email, password string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.passwords[email] = password
}

func (p *Provider) RemoveCredential(email string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.passwords, email)
}

// Login checks the credentials, persists the session and records a login
// activity entry. It reports success only; failure details are not leaked
// to the caller.
func (p *Provider) Login(email, password string) bool {
	p.mu.RLock()
	stored, ok := p.passwords[email]
	p.mu.RUnlock()
	if !ok || stored != password {
		p.log.Warn().Str("email", email).Msg("login rejected")
		return false
	}

	user, err := p.users.GetByEmail(email)
	if err != nil {
		p.log.Warn().Str("email", email).Msg("credentials without account")
		return false
	}

	if err := p.sessions.Save(user); err != nil {
		p.log.Error().Err(err).Msg("failed to persist session")
		return false
	}
	p.activity.Record(user, model.ActionLogin, "Вход в систему", "", nil)
	return true
}

func (p *Provider) Logout() {
	if err := p.sessions.Clear(); err != nil {
		p.log.Error().Err(err).Msg("failed to clear session")
	}
}

// CurrentUser resolves the session, returning nil until someone logs in.
func (p *Provider) CurrentUser() *model.User {
	user, err := p.sessions.Load()
	if err != nil {
		p.log.Error().Err(err).Msg("failed to load session")
		return nil
	}
	return user
}
