package database

import "database/sql"

// DashboardStats holds the counts shown on the landing page.
type DashboardStats struct {
	Swimmers       int `json:"swimmers"`
	Events         int `json:"events"`
	UpcomingEvents int `json:"upcoming_events"`
	ActiveSubs     int `json:"active_subscriptions"`
}

// GetDashboardStats gathers counts, scoped to one club when clubID is set.
func GetDashboardStats(db *sql.DB, clubID string) (*DashboardStats, error) {
	stats := &DashboardStats{}

	type countQuery struct {
		all    string
		byClub string
		dest   *int
	}
	queries := []countQuery{
		{
			all:    `SELECT COUNT(*) FROM swimmers WHERE is_active = true`,
			byClub: `SELECT COUNT(*) FROM swimmers WHERE is_active = true AND club_id = $1`,
			dest:   &stats.Swimmers,
		},
		{
			all:    `SELECT COUNT(*) FROM events`,
			byClub: `SELECT COUNT(*) FROM events WHERE club_id = $1`,
			dest:   &stats.Events,
		},
		{
			all:    `SELECT COUNT(*) FROM events WHERE start_date > NOW()`,
			byClub: `SELECT COUNT(*) FROM events WHERE start_date > NOW() AND club_id = $1`,
			dest:   &stats.UpcomingEvents,
		},
		{
			all: `SELECT COUNT(*) FROM subscriptions WHERE status = 'active'`,
			byClub: `SELECT COUNT(*) FROM subscriptions s
					 JOIN swimmers sw ON sw.id = s.swimmer_id
					 WHERE s.status = 'active' AND sw.club_id = $1`,
			dest: &stats.ActiveSubs,
		},
	}

	for _, q := range queries {
		var err error
		if clubID != "" {
			err = db.QueryRow(q.byClub, clubID).Scan(q.dest)
		} else {
			err = db.QueryRow(q.all).Scan(q.dest)
		}
		if err != nil {
			return nil, err
		}
	}
	return stats, nil
}
