package db

// SchemaSQL is the complete schema for fresh mnemona installs. This is the
// SINGLE SOURCE OF TRUTH for the database schema: repository tests load it
// via GetSchemaSQL() so drift between tests and production fails immediately
// with "no such column" instead of surfacing in the field.
//
// Keep this in sync with the migrations list in migrations.go: a change ships
// as a migration for existing databases AND as an edit here for fresh ones.
const SchemaSQL = `
-- Departments (top-level grouping, identity is the unique code)
CREATE TABLE IF NOT EXISTS departments (
	id TEXT PRIMARY KEY,
	code TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL
);

-- Courses (per-department compact random serial, lowercase status text)
CREATE TABLE IF NOT EXISTS courses (
	id TEXT PRIMARY KEY,
	department_id TEXT NOT NULL,
	serial INTEGER NOT NULL,
	name TEXT NOT NULL,
	description TEXT,
	book TEXT,
	prompt TEXT,
	status TEXT NOT NULL CHECK(status IN ('draft', 'inactive', 'active', 'complete')) DEFAULT 'draft',
	FOREIGN KEY (department_id) REFERENCES departments(id),
	UNIQUE(department_id, serial)
);

-- Weeks (date is 2006-01-02 text, NULL until the course is activated)
CREATE TABLE IF NOT EXISTS weeks (
	id TEXT PRIMARY KEY,
	course_id TEXT NOT NULL,
	serial INTEGER NOT NULL,
	text TEXT NOT NULL,
	date TEXT,
	is_complete INTEGER NOT NULL DEFAULT 0,
	FOREIGN KEY (course_id) REFERENCES courses(id) ON DELETE CASCADE
);

-- Targets (study tasks within a week)
CREATE TABLE IF NOT EXISTS targets (
	id TEXT PRIMARY KEY,
	week_id TEXT NOT NULL,
	serial INTEGER NOT NULL,
	text TEXT NOT NULL,
	source TEXT NOT NULL DEFAULT '',
	is_complete INTEGER NOT NULL DEFAULT 0,
	FOREIGN KEY (week_id) REFERENCES weeks(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_courses_department ON courses(department_id);
CREATE INDEX IF NOT EXISTS idx_weeks_course ON weeks(course_id);
CREATE INDEX IF NOT EXISTS idx_weeks_date ON weeks(date);
CREATE INDEX IF NOT EXISTS idx_targets_week ON targets(week_id);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install: create the modern schema directly and mark all
		// migrations as applied so they never run against it.
		if _, err := db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
