package corpus

import (
	"database/sql"

	"github.com/pkg/errors"

	classifier "github.com/samuel/go-nbclassifier"
)

const (
	documentsTable   = "documents"
	createTableQuery = `CREATE TABLE IF NOT EXISTS ` + documentsTable + ` (
        id INTEGER PRIMARY KEY ASC,
        name TEXT NOT NULL,
        label INTEGER NOT NULL,
        body TEXT NOT NULL,
        UNIQUE(name, label))`
	documentsQuery      = `SELECT "name", "label", "body" FROM ` + documentsTable + ` ORDER BY "id"`
	countsQuery         = `SELECT "label", COUNT(*) FROM ` + documentsTable + ` GROUP BY "label"`
	insertDocumentQuery = `INSERT OR IGNORE INTO ` + documentsTable + ` ("name", "label", "body") VALUES (?, ?, ?)`
)

type sqlStore struct {
	db             *sql.DB
	documentsQuery *sql.Stmt
	countsQuery    *sql.Stmt
}

// CreateTables creates the documents table if it does not exist.
func CreateTables(db *sql.DB) error {
	_, err := db.Exec(createTableQuery)
	return errors.Wrap(err, "corpus: creating tables")
}

// NewSQLStore returns an SQL database backed Store. The tables must already
// exist (see CreateTables).
func NewSQLStore(db *sql.DB) (Store, error) {
	s := &sqlStore{
		db: db,
	}
	var err error
	s.documentsQuery, err = db.Prepare(documentsQuery)
	if err != nil {
		return nil, err
	}
	s.countsQuery, err = db.Prepare(countsQuery)
	return s, err
}

func (s *sqlStore) AddDocuments(docs ...Document) error {
	for _, doc := range docs {
		if err := validate(doc); err != nil {
			return err
		}
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(insertDocumentQuery)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, doc := range docs {
		res, err := stmt.Exec(doc.Name, int(doc.Label), doc.Body)
		if err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "corpus: inserting %s", doc.Name)
		}
		if n, err := res.RowsAffected(); err != nil {
			tx.Rollback()
			return err
		} else if n != 1 {
			if err := tx.Rollback(); err != nil {
				return err
			}
			return ErrDuplicateDocument(doc.Name)
		}
	}
	return tx.Commit()
}

func (s *sqlStore) Documents() ([]Document, error) {
	rows, err := s.documentsQuery.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	docs := make([]Document, 0)
	for rows.Next() {
		var doc Document
		var label int
		if err := rows.Scan(&doc.Name, &label, &doc.Body); err != nil {
			return nil, err
		}
		doc.Label = classifier.Label(label)
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *sqlStore) Counts() (map[classifier.Label]int64, error) {
	rows, err := s.countsQuery.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := map[classifier.Label]int64{classifier.Ham: 0, classifier.Spam: 0}
	for rows.Next() {
		var label int
		var n int64
		if err := rows.Scan(&label, &n); err != nil {
			return nil, err
		}
		counts[classifier.Label(label)] = n
	}
	return counts, rows.Err()
}
