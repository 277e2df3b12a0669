package services

import (
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/phonedrive/api/internal/config"
	"github.com/phonedrive/api/internal/database"
	"github.com/phonedrive/api/internal/notify"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		JWTUserExpiry:  168 * time.Hour,
		JWTAdminExpiry: 2 * time.Hour,
		AdminEmail:     "owner@phonedrive.example",
		AdminPassword:  "super-secret-pw",
		OwnerEmail:     "owner@phonedrive.example",
		ShopName:       "PhoneDrive",
		ShopAddress:    "10 Rue de la Tech, 75000 Paris",
	}
}

// recordingMailer captures sends so tests can assert on fire-and-forget
// notifications.
type recordingMailer struct {
	mu    sync.Mutex
	sends []recordedEmail
}

type recordedEmail struct {
	To      string
	Subject string
	Body    string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, recordedEmail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *recordingMailer) Sent() []recordedEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]recordedEmail, len(m.sends))
	copy(out, m.sends)
	return out
}

func newTestNotifier(cfg *config.Config, mailer notify.Mailer) *notify.Service {
	return notify.NewService(mailer, nil, cfg)
}
