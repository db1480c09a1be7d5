package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
    session_id       TEXT PRIMARY KEY,
    position         INTEGER NOT NULL,
    start_time       TEXT,
    end_time         TEXT,
    closed           INTEGER NOT NULL DEFAULT 0,
    commands         INTEGER NOT NULL DEFAULT 0,
    command_files    INTEGER NOT NULL DEFAULT 0,
    user_files       INTEGER NOT NULL DEFAULT 0,
    total_secs       INTEGER NOT NULL DEFAULT 0,
    actual_secs      INTEGER NOT NULL DEFAULT 0,
    end_of_day_secs  INTEGER NOT NULL DEFAULT 0,
    between_secs     INTEGER NOT NULL DEFAULT 0,
    exported_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS commands (
    command_id       TEXT PRIMARY KEY,
    session_id       TEXT NOT NULL REFERENCES sessions(session_id) ON DELETE CASCADE,
    position         INTEGER NOT NULL,
    filename         TEXT NOT NULL,
    status           TEXT NOT NULL,
    minutes          TEXT,
    seconds          TEXT,
    start_time       TEXT,
    end_time         TEXT,
    rapid_secs       INTEGER NOT NULL,
    feed_secs        INTEGER NOT NULL,
    laser_secs       INTEGER NOT NULL,
    axes             TEXT,
    outputs          TEXT,
    inputs           TEXT,
    atc              TEXT
);

CREATE INDEX IF NOT EXISTS idx_commands_session ON commands(session_id);
CREATE INDEX IF NOT EXISTS idx_sessions_start ON sessions(start_time);
`
