// SPDX-License-Identifier: MIT

package scan

import (
	"database/sql"
	"fmt"

	// Pure-Go SQLite driver, registered as "sqlite".
	_ "modernc.org/sqlite"
)

// sqliteBatch bounds the rows per insert transaction.
const sqliteBatch = 500

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS scan_rows (
	run_id            TEXT NOT NULL,
	c_l               REAL NOT NULL,
	c_n               REAL NOT NULL,
	c_e1              REAL NOT NULL,
	c_e2              REAL NOT NULL,
	c_e3              REAL NOT NULL,
	lambda_ir         REAL NOT NULL,
	m_n               REAL NOT NULL,
	lightest_nu_mass  REAL NOT NULL,
	ordering          TEXT NOT NULL,
	y_e_bar_1         REAL,
	y_e_bar_2         REAL,
	y_e_bar_3         REAL,
	y_n_bar_1         REAL,
	y_n_bar_2         REAL,
	y_n_bar_3         REAL,
	f_l               REAL,
	f_n               REAL,
	f_n_uv            REAL,
	max_y_bar         REAL,
	perturbative      INTEGER NOT NULL,
	natural           INTEGER NOT NULL,
	lfv_passes        INTEGER NOT NULL,
	lfv_ratio         REAL,
	passes_all        INTEGER NOT NULL,
	reject_reason     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scan_rows_run ON scan_rows(run_id);
`

const sqliteInsert = `
INSERT INTO scan_rows (
	run_id, c_l, c_n, c_e1, c_e2, c_e3,
	lambda_ir, m_n, lightest_nu_mass, ordering,
	y_e_bar_1, y_e_bar_2, y_e_bar_3,
	y_n_bar_1, y_n_bar_2, y_n_bar_3,
	f_l, f_n, f_n_uv, max_y_bar,
	perturbative, natural, lfv_passes, lfv_ratio,
	passes_all, reject_reason
) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`

// WriteSQLite appends rows to the scan_rows table at path, creating
// the schema on first use. WAL mode keeps concurrent readers cheap;
// inserts are batched in transactions.
func WriteSQLite(path string, rows []Row) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("scan: open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("scan: enable WAL: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("scan: create schema: %w", err)
	}

	for start := 0; start < len(rows); start += sqliteBatch {
		end := start + sqliteBatch
		if end > len(rows) {
			end = len(rows)
		}
		if err := insertBatch(db, rows[start:end]); err != nil {
			return err
		}
	}
	return db.Close()
}

func insertBatch(db *sql.DB, rows []Row) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("scan: begin batch: %w", err)
	}
	stmt, err := tx.Prepare(sqliteInsert)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("scan: prepare insert: %w", err)
	}
	for _, r := range rows {
		_, err := stmt.Exec(
			r.RunID, r.CL, r.CN, r.CE[0], r.CE[1], r.CE[2],
			r.LambdaIR, r.MN, r.LightestNuMass, r.Ordering,
			sqlFloat(r.YbarE[0]), sqlFloat(r.YbarE[1]), sqlFloat(r.YbarE[2]),
			sqlFloat(r.YbarN[0]), sqlFloat(r.YbarN[1]), sqlFloat(r.YbarN[2]),
			sqlFloat(r.FL), sqlFloat(r.FN), sqlFloat(r.FNUV), sqlFloat(r.MaxYbar),
			r.Perturbative, r.Natural, r.LFVPasses, sqlFloat(r.LFVRatio),
			r.PassesAll, r.RejectReason,
		)
		if err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("scan: insert row: %w", err)
		}
	}
	if err := stmt.Close(); err != nil {
		tx.Rollback()
		return fmt.Errorf("scan: close statement: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("scan: commit batch: %w", err)
	}
	return nil
}

// sqlFloat maps NaN to NULL (SQLite has no NaN literal).
func sqlFloat(v float64) interface{} {
	if v != v {
		return nil
	}
	return v
}
