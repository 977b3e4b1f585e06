package repository

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder 收集 DryRun 模式下生成的 SQL
type sqlRecorder struct {
	mu   sync.Mutex
	sqls []string
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sqls) == 0 {
		t.Fatal("no SQL captured")
	}
	return r.sqls[len(r.sqls)-1]
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "user:pass@tcp(127.0.0.1:3306)/socialpulse?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	rec := &sqlRecorder{}
	err = db.Callback().Query().After("gorm:query").Register("test:record_sql", func(tx *gorm.DB) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.sqls = append(rec.sqls, tx.Statement.SQL.String())
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
	return db, rec
}

func assertContains(t *testing.T, sql string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(sql, p) {
			t.Errorf("SQL %q does not contain %q", sql, p)
		}
	}
}

func TestPostListInRangeSQL(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewPostRepository(db)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.ListInRange(context.Background(), PostRangeQuery{
		OwnerIDs: []string{"a", "b"},
		Start:    start,
		End:      start.AddDate(0, 0, 7),
		Platform: "tiktok",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertContains(t, rec.last(t),
		"FROM `posts`",
		"user_id IN (?,?)",
		"platform = ?",
		"posted_at >= ? AND posted_at <= ?",
		"ORDER BY posted_at ASC",
	)
}

func TestPostListInRangeWithoutPlatform(t *testing.T) {
	db, rec := newDryRunDB(t)

	_, err := NewPostRepository(db).ListInRange(context.Background(), PostRangeQuery{OwnerIDs: []string{"a"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sql := rec.last(t); strings.Contains(sql, "platform") {
		t.Fatalf("platform filter applied without platform: %q", sql)
	}
}

func TestPostListPagedSQL(t *testing.T) {
	db, rec := newDryRunDB(t)

	_, _, err := NewPostRepository(db).ListPaged(context.Background(), []string{"a"}, "instagram", 20, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec.mu.Lock()
	sqls := append([]string(nil), rec.sqls...)
	rec.mu.Unlock()
	if len(sqls) != 2 {
		t.Fatalf("expected count and list queries, got %d: %v", len(sqls), sqls)
	}
	assertContains(t, sqls[0], "SELECT count(*)", "user_id IN (?)", "platform = ?")
	assertContains(t, sqls[1], "ORDER BY posted_at DESC", "LIMIT ?", "OFFSET ?")
}

func TestPostGetByIDForOwnersSQL(t *testing.T) {
	db, rec := newDryRunDB(t)

	_, err := NewPostRepository(db).GetByIDForOwners(context.Background(), "id-1", []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, rec.last(t), "user_id IN (?,?)", "id = ?", "LIMIT ?")
}

func TestTeamMemberListActiveAdminIDsSQL(t *testing.T) {
	db, rec := newDryRunDB(t)

	if _, err := NewTeamMemberRepository(db).ListActiveAdminIDs(context.Background(), "m-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, rec.last(t),
		"SELECT `admin_user_id` FROM `team_members`",
		"member_user_id = ? AND status = ?",
	)
}

func TestDailyMetricListInRangeSQL(t *testing.T) {
	db, rec := newDryRunDB(t)

	start := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)
	_, err := NewDailyMetricRepository(db).ListInRange(context.Background(), []string{"a"}, start, start.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, rec.last(t),
		"FROM `daily_metrics`",
		"date >= ? AND date <= ?",
		"ORDER BY date ASC",
	)
}
