// Package archive writes sealed recordings to ClickHouse, one row per
// snapshot, for offline analysis of what puppets were taught.
package archive

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/automoto/puppethands/recording"
	"github.com/automoto/puppethands/shared/netconfig"
)

type ClickHouseDB struct {
	conn driver.Conn
}

// NewClickHouseDB connects to ClickHouse and creates the archive tables.
func NewClickHouseDB(ctx context.Context, addr, database, username, password string) (*ClickHouseDB, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: database,
			Username: username,
			Password: password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		DialTimeout: 5 * time.Second,
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping ClickHouse: %w", err)
	}

	log.Printf("[archive] connected to ClickHouse at %s", addr)

	db := &ClickHouseDB{conn: conn}
	if err := db.InitSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

// InitSchema creates the necessary tables if they don't exist
func (db *ClickHouseDB) InitSchema(ctx context.Context) error {
	for _, tableSQL := range AllTables() {
		if err := db.conn.Exec(ctx, tableSQL); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// SaveRecording inserts the recording header and a batch of its snapshots.
func (db *ClickHouseDB) SaveRecording(ctx context.Context, id string, rec recording.Recording, sealedAt time.Time) error {
	err := db.conn.Exec(ctx, `
		INSERT INTO puppet_recordings (recording_id, sealed_at, snapshots, span)
		VALUES (?, ?, ?, ?)
	`, id, sealedAt, uint32(rec.Len()), rec.Span())
	if err != nil {
		return fmt.Errorf("failed to insert recording %s: %w", id, err)
	}

	if rec.Empty() {
		return nil
	}

	batch, err := db.conn.PrepareBatch(ctx, "INSERT INTO puppet_snapshots")
	if err != nil {
		return fmt.Errorf("failed to prepare snapshot batch: %w", err)
	}
	for _, row := range snapshotRows(id, rec) {
		if err := batch.Append(
			row.RecordingID,
			row.Seq,
			row.T,
			row.X, row.Y, row.Z,
			row.QW, row.QX, row.QY, row.QZ,
			row.Pressed,
			row.Touched,
			row.TouchpadX, row.TouchpadY,
		); err != nil {
			return fmt.Errorf("failed to append snapshot %d: %w", row.Seq, err)
		}
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send snapshots for %s: %w", id, err)
	}
	return nil
}

// Close closes the ClickHouse connection
func (db *ClickHouseDB) Close() error {
	if db.conn != nil {
		if err := db.conn.Close(); err != nil {
			return fmt.Errorf("failed to close ClickHouse connection: %w", err)
		}
		log.Println("[archive] ClickHouse connection closed")
	}
	return nil
}

// snapshotRow is one puppet_snapshots row.
type snapshotRow struct {
	RecordingID string
	Seq         uint32
	T           float64

	X, Y, Z        float64
	QW, QX, QY, QZ float64

	Pressed []string
	Touched []string

	TouchpadX, TouchpadY float64
}

func snapshotRows(id string, rec recording.Recording) []snapshotRow {
	rows := make([]snapshotRow, 0, rec.Len())
	for i, s := range rec.Snapshots() {
		row := snapshotRow{
			RecordingID: id,
			Seq:         uint32(i),
			T:           s.Timestamp,
			X:           s.Position.X(),
			Y:           s.Position.Y(),
			Z:           s.Position.Z(),
			QW:          s.Rotation.W,
			QX:          s.Rotation.V.X(),
			QY:          s.Rotation.V.Y(),
			QZ:          s.Rotation.V.Z(),
			Pressed:     []string{},
			Touched:     []string{},
			TouchpadX:   s.Axis[netconfig.ButtonTouchpad].X(),
			TouchpadY:   s.Axis[netconfig.ButtonTouchpad].Y(),
		}
		for b := netconfig.ButtonID(0); b < netconfig.ButtonCount; b++ {
			if s.Pressed[b] {
				row.Pressed = append(row.Pressed, b.String())
			}
			if s.Touched[b] {
				row.Touched = append(row.Touched, b.String())
			}
		}
		rows = append(rows, row)
	}
	return rows
}
