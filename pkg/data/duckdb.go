package data

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2"
)

func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS icons (
		id VARCHAR PRIMARY KEY,
		name VARCHAR,
		library VARCHAR,
		category VARCHAR,
		type VARCHAR,
		tags VARCHAR
	)`); err != nil {
		return nil, fmt.Errorf("failed to create icons table: %w", err)
	}

	return db, nil
}

// Catalog is the local DuckDB index of the last build. It is replaced
// wholesale on every pipeline run, like the manifest.
type Catalog struct {
	db *sql.DB
}

var duckDB *sql.DB

func NewCatalog() *Catalog {
	if duckDB == nil {
		db, err := InitDuckDB("iconpack.db")
		if err != nil {
			log.Fatal(err)
		}
		duckDB = db
	}

	return &Catalog{db: duckDB}
}

// OpenCatalog opens a catalog at an explicit path, bypassing the shared
// handle. Used by tests and the build pipeline's --db flag.
func OpenCatalog(path string) (*Catalog, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Reset drops all indexed icons ahead of a fresh build.
func (c *Catalog) Reset() error {
	_, err := c.db.Exec(`DELETE FROM icons`)
	return err
}

func (c *Catalog) SaveIcon(icon *IconRecord) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO icons (id, name, library, category, type, tags) VALUES (?, ?, ?, ?, ?, ?)`,
		icon.ID, icon.Name, icon.Library, icon.Category, icon.Type, strings.Join(icon.Tags, ","),
	)
	if err != nil {
		return fmt.Errorf("failed to save icon %s: %w", icon.ID, err)
	}
	return nil
}

func (c *Catalog) SaveIcons(icons []IconRecord) error {
	for i := range icons {
		if err := c.SaveIcon(&icons[i]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) GetIcon(id string) (*IconRecord, error) {
	row := c.db.QueryRow(`SELECT id, name, library, category, type, tags FROM icons WHERE id = ?`, id)
	icon, err := scanIcon(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get icon %s: %w", id, err)
	}
	return icon, nil
}

func (c *Catalog) ListIcons() ([]*IconRecord, error) {
	return c.query(`SELECT id, name, library, category, type, tags FROM icons ORDER BY id`)
}

func (c *Catalog) ListByCategory(category string) ([]*IconRecord, error) {
	return c.query(`SELECT id, name, library, category, type, tags FROM icons WHERE category = ? ORDER BY id`, category)
}

func (c *Catalog) ListByLibrary(library string) ([]*IconRecord, error) {
	return c.query(`SELECT id, name, library, category, type, tags FROM icons WHERE library = ? ORDER BY id`, library)
}

// Uncategorized returns the icons still in the misc bucket, for manual review.
func (c *Catalog) Uncategorized() ([]*IconRecord, error) {
	return c.ListByCategory("misc")
}

// SetCategory records a manual category assignment from the review screen.
func (c *Catalog) SetCategory(id, category string) error {
	res, err := c.db.Exec(`UPDATE icons SET category = ? WHERE id = ?`, category, id)
	if err != nil {
		return fmt.Errorf("failed to set category for %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no icon with id %s", id)
	}
	return nil
}

// CountBy returns counts grouped by one of the icon columns
// (category, library or type).
func (c *Catalog) CountBy(column string) (map[string]int, error) {
	switch column {
	case "category", "library", "type":
	default:
		return nil, fmt.Errorf("cannot count by column %q", column)
	}

	rows, err := c.db.Query(fmt.Sprintf(`SELECT "%s", COUNT(*) FROM icons GROUP BY "%s"`, column, column))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		counts[key] = n
	}
	return counts, rows.Err()
}

func (c *Catalog) query(q string, args ...any) ([]*IconRecord, error) {
	rows, err := c.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var icons []*IconRecord
	for rows.Next() {
		icon, err := scanIcon(rows)
		if err != nil {
			return nil, err
		}
		icons = append(icons, icon)
	}
	return icons, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIcon(row rowScanner) (*IconRecord, error) {
	var icon IconRecord
	var tags string
	if err := row.Scan(&icon.ID, &icon.Name, &icon.Library, &icon.Category, &icon.Type, &tags); err != nil {
		return nil, err
	}
	if tags != "" {
		icon.Tags = strings.Split(tags, ",")
	}
	return &icon, nil
}
