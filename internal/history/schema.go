package history

const schema = `
CREATE TABLE IF NOT EXISTS requests (
    id               TEXT PRIMARY KEY,
    video_id         TEXT NOT NULL,
    language         TEXT NOT NULL,
    mode             TEXT NOT NULL,
    status           TEXT NOT NULL,
    error_kind       TEXT NOT NULL DEFAULT '',
    cue_count        INTEGER NOT NULL DEFAULT 0,
    duration_seconds REAL NOT NULL DEFAULT 0,
    degraded         INTEGER NOT NULL DEFAULT 0,
    elapsed_ms       INTEGER NOT NULL DEFAULT 0,
    created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_requests_created_at ON requests(created_at DESC);
`
