package archive

// AllTables returns the DDL for every archive table.
func AllTables() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS puppet_recordings (
			recording_id String,
			sealed_at DateTime64(3),
			snapshots UInt32,
			span Float64
		) ENGINE = MergeTree()
		ORDER BY (sealed_at, recording_id)`,

		`CREATE TABLE IF NOT EXISTS puppet_snapshots (
			recording_id String,
			seq UInt32,
			t Float64,
			x Float64,
			y Float64,
			z Float64,
			qw Float64,
			qx Float64,
			qy Float64,
			qz Float64,
			pressed Array(String),
			touched Array(String),
			touchpad_x Float64,
			touchpad_y Float64
		) ENGINE = MergeTree()
		ORDER BY (recording_id, seq)`,
	}
}
