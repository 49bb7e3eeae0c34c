package archive

const createTableSQL = `
CREATE TABLE IF NOT EXISTS reports (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    hostname      TEXT NOT NULL,
    fqdn          TEXT NOT NULL DEFAULT '',
    unit          TEXT NOT NULL DEFAULT 'default',
    collected_at  TEXT NOT NULL,
    stored_at     TEXT NOT NULL,
    report_json   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reports_hostname ON reports(hostname);
CREATE INDEX IF NOT EXISTS idx_reports_collected_at ON reports(collected_at);
`
