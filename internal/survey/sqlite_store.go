package survey

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		path = "survey.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA foreign_keys = ON;`,
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS surveys (
		survey_id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at_unix INTEGER NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1
	);`,
	`CREATE TABLE IF NOT EXISTS questions (
		question_id INTEGER PRIMARY KEY AUTOINCREMENT,
		survey_id INTEGER NOT NULL,
		question_text TEXT NOT NULL,
		question_type TEXT NOT NULL,
		is_required INTEGER NOT NULL DEFAULT 0,
		options_json TEXT,
		FOREIGN KEY (survey_id) REFERENCES surveys(survey_id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS responses (
		response_id INTEGER PRIMARY KEY AUTOINCREMENT,
		survey_id INTEGER NOT NULL,
		submitted_at_unix INTEGER NOT NULL,
		FOREIGN KEY (survey_id) REFERENCES surveys(survey_id) ON DELETE CASCADE
	);`,
	// answers sits under two parents that would both cascade into it; the
	// question side stays NO ACTION so a delete reaches each answer through
	// exactly one path (response -> answers).
	`CREATE TABLE IF NOT EXISTS answers (
		answer_id INTEGER PRIMARY KEY AUTOINCREMENT,
		response_id INTEGER NOT NULL,
		question_id INTEGER NOT NULL,
		answer_value TEXT NOT NULL,
		FOREIGN KEY (response_id) REFERENCES responses(response_id) ON DELETE CASCADE,
		FOREIGN KEY (question_id) REFERENCES questions(question_id) ON DELETE NO ACTION
	);`,
	`CREATE INDEX IF NOT EXISTS idx_questions_survey ON questions(survey_id);`,
	`CREATE INDEX IF NOT EXISTS idx_responses_survey ON responses(survey_id);`,
	`CREATE INDEX IF NOT EXISTS idx_answers_response ON answers(response_id);`,
}

// EnsureSchema creates the tables if absent and seeds the defined survey and
// its questions, all in one transaction. Safe to call on every process start:
// an existing survey is never re-inserted and questions are only seeded when
// the survey has none (covers a previous partially-seeded bootstrap).
func (s *SQLiteStore) EnsureSchema(ctx context.Context, def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create survey tables: %w", err)
		}
	}

	var surveyID int64
	err = tx.QueryRowContext(ctx,
		`SELECT survey_id FROM surveys WHERE title = ?`, def.Title,
	).Scan(&surveyID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, insertErr := tx.ExecContext(ctx,
			`INSERT INTO surveys (title, description, created_at_unix, is_active) VALUES (?, ?, ?, 1)`,
			def.Title, def.Description, time.Now().UTC().Unix(),
		)
		if insertErr != nil {
			return fmt.Errorf("insert survey %q: %w", def.Title, insertErr)
		}
		surveyID, insertErr = lastInsertID(ctx, tx, res)
		if insertErr != nil {
			return fmt.Errorf("resolve id for survey %q: %w", def.Title, insertErr)
		}
		if seedErr := seedQuestions(ctx, tx, surveyID, def.Questions); seedErr != nil {
			return seedErr
		}
	case err != nil:
		return fmt.Errorf("look up survey %q: %w", def.Title, err)
	default:
		var count int
		if countErr := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM questions WHERE survey_id = ?`, surveyID,
		).Scan(&count); countErr != nil {
			return fmt.Errorf("count questions for survey %q: %w", def.Title, countErr)
		}
		if count == 0 {
			if seedErr := seedQuestions(ctx, tx, surveyID, def.Questions); seedErr != nil {
				return seedErr
			}
		}
	}

	return tx.Commit()
}

func seedQuestions(ctx context.Context, tx *sql.Tx, surveyID int64, questions []QuestionDefinition) error {
	// Insertion order is the display order: question ids are assigned
	// ascending, and every later read sorts by question_id.
	for _, q := range questions {
		optionsJSON := sql.NullString{}
		if len(q.Options) > 0 {
			encoded, err := json.Marshal(q.Options)
			if err != nil {
				return fmt.Errorf("encode options for question %q: %w", q.Text, err)
			}
			optionsJSON = sql.NullString{String: string(encoded), Valid: true}
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (survey_id, question_text, question_type, is_required, options_json)
			 VALUES (?, ?, ?, ?, ?)`,
			surveyID, q.Text, q.Type, boolToInt(q.Required), optionsJSON,
		); err != nil {
			return fmt.Errorf("seed question %q: %w", q.Text, err)
		}
	}
	return nil
}

func (s *SQLiteStore) SurveyByTitle(ctx context.Context, title string) (Survey, error) {
	var (
		item          Survey
		createdAtUnix int64
		isActive      int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT survey_id, title, description, created_at_unix, is_active
		 FROM surveys WHERE title = ?`, title,
	).Scan(&item.SurveyID, &item.Title, &item.Description, &createdAtUnix, &isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Survey{}, ErrSurveyNotFound
		}
		return Survey{}, err
	}

	item.CreatedAt = time.Unix(createdAtUnix, 0).UTC()
	item.IsActive = isActive != 0
	return item, nil
}

func (s *SQLiteStore) SurveyQuestions(ctx context.Context, surveyID int64) ([]Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, survey_id, question_text, question_type, is_required, options_json
		 FROM questions WHERE survey_id = ? ORDER BY question_id ASC`,
		surveyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]Question, 0)
	for rows.Next() {
		var (
			item        Question
			isRequired  int64
			optionsJSON sql.NullString
		)
		if err := rows.Scan(&item.QuestionID, &item.SurveyID, &item.Text, &item.Type, &isRequired, &optionsJSON); err != nil {
			return nil, err
		}
		item.Required = isRequired != 0
		if optionsJSON.Valid {
			if err := json.Unmarshal([]byte(optionsJSON.String), &item.Options); err != nil {
				return nil, fmt.Errorf("decode options for question %d: %w", item.QuestionID, err)
			}
		}
		questions = append(questions, item)
	}

	return questions, rows.Err()
}

// PersistResponse writes one response row plus one answer row per draft as a
// single transaction. Drafts referencing questions outside surveyID are
// rejected before any insert, so a response is observable only with its
// complete answer set.
func (s *SQLiteStore) PersistResponse(ctx context.Context, surveyID int64, drafts []AnswerDraft) (int64, error) {
	// A response row must never exist without its answers.
	if len(drafts) == 0 {
		return 0, errors.New("no answers to persist")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	known, err := surveyQuestionIDs(ctx, tx, surveyID)
	if err != nil {
		return 0, err
	}
	for _, draft := range drafts {
		if _, ok := known[draft.QuestionID]; !ok {
			return 0, fmt.Errorf("question %d: %w", draft.QuestionID, ErrQuestionNotInSurvey)
		}
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO responses (survey_id, submitted_at_unix) VALUES (?, ?)`,
		surveyID, time.Now().UTC().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert response: %w", err)
	}

	responseID, err := lastInsertID(ctx, tx, res)
	if err != nil {
		return 0, fmt.Errorf("resolve response id: %w", err)
	}

	for _, draft := range drafts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO answers (response_id, question_id, answer_value) VALUES (?, ?, ?)`,
			responseID, draft.QuestionID, draft.Value,
		); err != nil {
			return 0, fmt.Errorf("insert answer for question %d: %w", draft.QuestionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return responseID, nil
}

// AggregateResponses reconstructs every persisted response with its
// question/answer pairs. The ORDER BY is authoritative: rows for one response
// arrive contiguously and question-ordered, so groups are built in a single
// streaming pass with no re-sort.
func (s *SQLiteStore) AggregateResponses(ctx context.Context) ([]ResponseGroup, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.response_id, r.submitted_at_unix, q.question_text, a.answer_value
		 FROM responses r
		 JOIN answers a ON a.response_id = r.response_id
		 JOIN questions q ON q.question_id = a.question_id
		 ORDER BY r.response_id ASC, q.question_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]ResponseGroup, 0)
	for rows.Next() {
		var (
			responseID    int64
			submittedUnix int64
			questionText  string
			answerValue   string
		)
		if err := rows.Scan(&responseID, &submittedUnix, &questionText, &answerValue); err != nil {
			return nil, err
		}

		if len(groups) == 0 || groups[len(groups)-1].ResponseID != responseID {
			groups = append(groups, ResponseGroup{
				ResponseID:  responseID,
				SubmittedAt: time.Unix(submittedUnix, 0).UTC(),
				Answers:     make([]QA, 0, 8),
			})
		}
		last := &groups[len(groups)-1]
		last.Answers = append(last.Answers, QA{QuestionText: questionText, AnswerValue: answerValue})
	}

	return groups, rows.Err()
}

func surveyQuestionIDs(ctx context.Context, tx *sql.Tx, surveyID int64) (map[int64]struct{}, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT question_id FROM questions WHERE survey_id = ?`, surveyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

// lastInsertID resolves a database-assigned identity with a two-tier
// strategy: the driver's last-insert-id first, then the engine-global
// last_insert_rowid() on the same transaction. An insert whose id cannot be
// resolved is a hard failure, never an unknown identifier.
func lastInsertID(ctx context.Context, tx *sql.Tx, res sql.Result) (int64, error) {
	if res != nil {
		if id, err := res.LastInsertId(); err == nil && id > 0 {
			return id, nil
		}
	}

	var id sql.NullInt64
	if err := tx.QueryRowContext(ctx, `SELECT last_insert_rowid()`).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIdentityUnresolved, err)
	}
	if !id.Valid || id.Int64 <= 0 {
		return 0, ErrIdentityUnresolved
	}
	return id.Int64, nil
}

func boolToInt(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

func (s *SQLiteStore) String() string {
	return fmt.Sprintf("sqlite_store(%T)", s.db)
}
