package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/identity"
	"spendwise/internal/models"
	"spendwise/internal/testutil"
)

// fakeExchanger returns a fixed profile per session id.
type fakeExchanger struct {
	profiles map[string]*identity.Profile
	err      error
	calls    int
}

func (f *fakeExchanger) Exchange(_ context.Context, sessionID string) (*identity.Profile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: unexpected status 401", identity.ErrRejected)
	}
	return p, nil
}

func strPtr(s string) *string { return &s }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestExchangeSession(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("new_user_seeds_predefined_categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		ex := &fakeExchanger{profiles: map[string]*identity.Profile{
			"sid-1": {Email: "ana@example.com", Name: "Ana", Picture: strPtr("https://img/ana"), SessionToken: "tok-1"},
		}}
		svc := NewSessionService(db, ex, NewCategoryService(db), WithClock(fixedClock(now)))

		user, session, err := svc.ExchangeSession(ctx, "sid-1")
		testutil.AssertNoError(t, err)

		if user.Email != "ana@example.com" || user.Name != "Ana" {
			t.Errorf("unexpected user: %+v", user)
		}
		if len(user.UserID) != len("user_")+12 || user.UserID[:5] != "user_" {
			t.Errorf("unexpected user id %q", user.UserID)
		}
		if session.SessionToken != "tok-1" {
			t.Errorf("expected provider token to be stored, got %q", session.SessionToken)
		}
		if !session.ExpiresAt.Equal(now.Add(DefaultSessionTTL)) {
			t.Errorf("expected expiry %s, got %s", now.Add(DefaultSessionTTL), session.ExpiresAt)
		}

		var categories []models.Category
		testutil.AssertNoError(t, db.Where("user_id = ?", user.UserID).Order("id").Find(&categories).Error)
		if len(categories) != len(models.PredefinedCategories) {
			t.Fatalf("expected %d categories, got %d", len(models.PredefinedCategories), len(categories))
		}
		for i, c := range categories {
			want := models.PredefinedCategories[i]
			if c.Name != want.Name || c.Color != want.Color || !c.IsPredefined {
				t.Errorf("category %d: expected %+v predefined, got %+v", i, want, c)
			}
		}
	})

	t.Run("existing_email_reuses_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		ex := &fakeExchanger{profiles: map[string]*identity.Profile{
			"sid-1": {Email: "ana@example.com", Name: "Ana", Picture: strPtr("old"), SessionToken: "tok-1"},
			"sid-2": {Email: "ana@example.com", Name: "Ana Maria", Picture: nil, SessionToken: "tok-2"},
		}}
		svc := NewSessionService(db, ex, NewCategoryService(db))

		first, _, err := svc.ExchangeSession(ctx, "sid-1")
		testutil.AssertNoError(t, err)
		second, _, err := svc.ExchangeSession(ctx, "sid-2")
		testutil.AssertNoError(t, err)

		if first.UserID != second.UserID {
			t.Errorf("expected user id to be stable, got %s then %s", first.UserID, second.UserID)
		}
		if second.Name != "Ana Maria" || second.Picture != nil {
			t.Errorf("expected profile to be refreshed, got %+v", second)
		}
		if n := testutil.CountRows(t, db, &models.User{}, ""); n != 1 {
			t.Errorf("expected 1 user, got %d", n)
		}
		if n := testutil.CountRows(t, db, &models.Category{}, "user_id = ?", first.UserID); n != 7 {
			t.Errorf("expected 7 categories, got %d", n)
		}
		if n := testutil.CountRows(t, db, &models.Session{}, "user_id = ?", first.UserID); n != 2 {
			t.Errorf("expected 2 sessions, got %d", n)
		}

		var stored models.User
		testutil.AssertNoError(t, db.Where("user_id = ?", first.UserID).First(&stored).Error)
		if stored.Name != "Ana Maria" || stored.Picture != nil {
			t.Errorf("expected stored profile to be refreshed, got %+v", stored)
		}
	})

	t.Run("same_token_twice_stores_two_sessions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		ex := &fakeExchanger{profiles: map[string]*identity.Profile{
			"sid": {Email: "bo@example.com", Name: "Bo", SessionToken: "same"},
		}}
		svc := NewSessionService(db, ex, NewCategoryService(db))

		for i := 0; i < 2; i++ {
			_, _, err := svc.ExchangeSession(ctx, "sid")
			testutil.AssertNoError(t, err)
		}
		if n := testutil.CountRows(t, db, &models.Session{}, "session_token = ?", "same"); n != 2 {
			t.Errorf("expected 2 session rows, got %d", n)
		}
	})

	t.Run("missing_session_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		ex := &fakeExchanger{}
		svc := NewSessionService(db, ex, NewCategoryService(db))

		_, _, err := svc.ExchangeSession(ctx, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		if ex.calls != 0 {
			t.Error("provider should not be called without a session id")
		}
	})

	t.Run("provider_rejects", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSessionService(db, &fakeExchanger{}, NewCategoryService(db))

		_, _, err := svc.ExchangeSession(ctx, "unknown")
		testutil.AssertAppError(t, err, "UPSTREAM_AUTH_FAILED")
		if n := testutil.CountRows(t, db, &models.User{}, ""); n != 0 {
			t.Errorf("expected no users, got %d", n)
		}
	})

	t.Run("provider_unreachable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSessionService(db, &fakeExchanger{err: errors.New("dial tcp: refused")}, NewCategoryService(db))

		_, _, err := svc.ExchangeSession(ctx, "sid")
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")
	})

	t.Run("empty_provider_token_gets_local_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		ex := &fakeExchanger{profiles: map[string]*identity.Profile{
			"sid": {Email: "cy@example.com", Name: "Cy"},
		}}
		svc := NewSessionService(db, ex, NewCategoryService(db))

		_, session, err := svc.ExchangeSession(ctx, "sid")
		testutil.AssertNoError(t, err)
		if len(session.SessionToken) != 64 {
			t.Errorf("expected generated token, got %q", session.SessionToken)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		token     string
		expiresAt time.Time
		lookup    string
		wantErr   *apperrors.AppError
	}{
		{name: "valid", token: "tok", expiresAt: now.Add(time.Second), lookup: "tok"},
		{name: "expired_one_second_ago", token: "tok", expiresAt: now.Add(-time.Second), lookup: "tok", wantErr: apperrors.ErrSessionExpired},
		{name: "expires_exactly_now", token: "tok", expiresAt: now, lookup: "tok", wantErr: apperrors.ErrSessionExpired},
		{name: "unknown_token", token: "tok", expiresAt: now.Add(time.Hour), lookup: "other", wantErr: apperrors.ErrInvalidSession},
		{name: "no_token", token: "tok", expiresAt: now.Add(time.Hour), lookup: "", wantErr: apperrors.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			defer testutil.TeardownTestDB(t, db)
			svc := NewSessionService(db, &fakeExchanger{}, NewCategoryService(db), WithClock(fixedClock(now)))
			user := testutil.CreateTestUser(t, db)
			testutil.CreateTestSession(t, db, user.UserID, tt.token, tt.expiresAt)

			userID, err := svc.Authenticate(ctx, tt.lookup)
			if tt.wantErr != nil {
				testutil.AssertSentinel(t, err, tt.wantErr)
				testutil.AssertAppError(t, err, "UNAUTHORIZED")
				return
			}
			testutil.AssertNoError(t, err)
			if userID != user.UserID {
				t.Errorf("expected %s, got %s", user.UserID, userID)
			}
		})
	}
}

func TestAuthenticate_LatestSessionWins(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	now := time.Now()
	svc := NewSessionService(db, &fakeExchanger{}, NewCategoryService(db), WithClock(fixedClock(now)))
	user := testutil.CreateTestUser(t, db)

	testutil.CreateTestSession(t, db, user.UserID, "tok", now.Add(-time.Hour))
	testutil.CreateTestSession(t, db, user.UserID, "tok", now.Add(time.Hour))

	userID, err := svc.Authenticate(context.Background(), "tok")
	testutil.AssertNoError(t, err)
	if userID != user.UserID {
		t.Errorf("expected %s, got %s", user.UserID, userID)
	}
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes_all_rows_for_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSessionService(db, &fakeExchanger{}, NewCategoryService(db))
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestSession(t, db, user.UserID, "tok", time.Now().Add(time.Hour))
		testutil.CreateTestSession(t, db, user.UserID, "tok", time.Now().Add(time.Hour))
		testutil.CreateTestSession(t, db, user.UserID, "keep", time.Now().Add(time.Hour))

		testutil.AssertNoError(t, svc.Logout(ctx, "tok"))

		if n := testutil.CountRows(t, db, &models.Session{}, "session_token = ?", "tok"); n != 0 {
			t.Errorf("expected sessions to be deleted, %d left", n)
		}
		if n := testutil.CountRows(t, db, &models.Session{}, "session_token = ?", "keep"); n != 1 {
			t.Errorf("expected other session to survive, got %d", n)
		}

		_, err := svc.Authenticate(ctx, "tok")
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})

	t.Run("unknown_or_missing_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSessionService(db, &fakeExchanger{}, NewCategoryService(db))

		testutil.AssertNoError(t, svc.Logout(ctx, "nope"))
		testutil.AssertNoError(t, svc.Logout(ctx, ""))
	})
}

func TestGetUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSessionService(db, &fakeExchanger{}, NewCategoryService(db))
	user := testutil.CreateTestUser(t, db)

	got, err := svc.GetUser(context.Background(), user.UserID)
	testutil.AssertNoError(t, err)
	if got.Email != user.Email {
		t.Errorf("expected %s, got %s", user.Email, got.Email)
	}

	_, err = svc.GetUser(context.Background(), "user_missing")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}
