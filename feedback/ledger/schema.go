package ledger

const schemaSQL = `
CREATE TABLE IF NOT EXISTS reaction_events (
	id         TEXT PRIMARY KEY,
	bot_name   TEXT NOT NULL,
	user_id    TEXT NOT NULL,
	message_id TEXT NOT NULL DEFAULT '',
	emoji      TEXT NOT NULL,
	sentiment  TEXT NOT NULL,
	category   TEXT NOT NULL,
	score      REAL NOT NULL,
	removed    INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reaction_events_pair
	ON reaction_events (bot_name, user_id, created_at);
`
