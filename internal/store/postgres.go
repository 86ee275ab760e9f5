package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/talent-matcher/internal/types"
)

// PostgresStore persists records in PostgreSQL. BIGSERIAL primary keys give
// the monotonically increasing IDs the engine expects.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres opens a connection pool, verifies it, and ensures the
// schema exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			required_skills TEXT[] NOT NULL DEFAULT '{}',
			location TEXT NOT NULL DEFAULT '',
			cultural_profile JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS candidates (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			profile TEXT NOT NULL DEFAULT '',
			skills TEXT[] NOT NULL DEFAULT '{}',
			experience_years INT NOT NULL DEFAULT 0,
			location TEXT NOT NULL DEFAULT '',
			cultural_profile JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// PutJob inserts a job and returns its assigned ID. A non-zero ID updates the
// existing row instead.
func (s *PostgresStore) PutJob(ctx context.Context, job types.JobRecord) (int, error) {
	profile, err := marshalProfile(job.CulturalProfile)
	if err != nil {
		return 0, err
	}

	if job.ID != 0 {
		_, err := s.pool.Exec(ctx,
			`UPDATE jobs SET title = $1, company = $2, description = $3,
			 required_skills = $4, location = $5, cultural_profile = $6
			 WHERE id = $7`,
			job.Title, job.Company, job.Description, job.RequiredSkills,
			job.Location, profile, job.ID,
		)
		if err != nil {
			return 0, &UnavailableError{Op: "update job", Cause: err}
		}
		return job.ID, nil
	}

	var id int
	err = s.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, company, description, required_skills, location, cultural_profile)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		job.Title, job.Company, job.Description, job.RequiredSkills,
		job.Location, profile,
	).Scan(&id)
	if err != nil {
		return 0, &UnavailableError{Op: "insert job", Cause: err}
	}
	return id, nil
}

// PutCandidate inserts a candidate and returns its assigned ID.
func (s *PostgresStore) PutCandidate(ctx context.Context, candidate types.CandidateRecord) (int, error) {
	profile, err := marshalProfile(candidate.CulturalProfile)
	if err != nil {
		return 0, err
	}

	if candidate.ID != 0 {
		_, err := s.pool.Exec(ctx,
			`UPDATE candidates SET name = $1, profile = $2, skills = $3,
			 experience_years = $4, location = $5, cultural_profile = $6
			 WHERE id = $7`,
			candidate.Name, candidate.Profile, candidate.Skills,
			candidate.ExperienceYears, candidate.Location, profile, candidate.ID,
		)
		if err != nil {
			return 0, &UnavailableError{Op: "update candidate", Cause: err}
		}
		return candidate.ID, nil
	}

	var id int
	err = s.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, profile, skills, experience_years, location, cultural_profile)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		candidate.Name, candidate.Profile, candidate.Skills,
		candidate.ExperienceYears, candidate.Location, profile,
	).Scan(&id)
	if err != nil {
		return 0, &UnavailableError{Op: "insert candidate", Cause: err}
	}
	return id, nil
}

func (s *PostgresStore) GetJob(ctx context.Context, id int) (types.JobRecord, error) {
	var job types.JobRecord
	var profile []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, company, description, required_skills, location, cultural_profile
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.Title, &job.Company, &job.Description,
		&job.RequiredSkills, &job.Location, &profile)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.JobRecord{}, &NotFoundError{Kind: "job", ID: id}
		}
		return types.JobRecord{}, &UnavailableError{Op: "get job", Cause: err}
	}
	job.CulturalProfile, err = unmarshalProfile(profile)
	if err != nil {
		return types.JobRecord{}, err
	}
	return job, nil
}

func (s *PostgresStore) GetCandidate(ctx context.Context, id int) (types.CandidateRecord, error) {
	var candidate types.CandidateRecord
	var profile []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, profile, skills, experience_years, location, cultural_profile
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&candidate.ID, &candidate.Name, &candidate.Profile, &candidate.Skills,
		&candidate.ExperienceYears, &candidate.Location, &profile)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.CandidateRecord{}, &NotFoundError{Kind: "candidate", ID: id}
		}
		return types.CandidateRecord{}, &UnavailableError{Op: "get candidate", Cause: err}
	}
	candidate.CulturalProfile, err = unmarshalProfile(profile)
	if err != nil {
		return types.CandidateRecord{}, err
	}
	return candidate, nil
}

func (s *PostgresStore) ListJobs(ctx context.Context) ([]types.JobRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, company, description, required_skills, location, cultural_profile
		 FROM jobs ORDER BY id ASC`)
	if err != nil {
		return nil, &UnavailableError{Op: "list jobs", Cause: err}
	}
	defer rows.Close()

	var jobs []types.JobRecord
	for rows.Next() {
		var job types.JobRecord
		var profile []byte
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Description,
			&job.RequiredSkills, &job.Location, &profile); err != nil {
			return nil, &UnavailableError{Op: "scan job", Cause: err}
		}
		job.CulturalProfile, err = unmarshalProfile(profile)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (s *PostgresStore) ListCandidates(ctx context.Context) ([]types.CandidateRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, profile, skills, experience_years, location, cultural_profile
		 FROM candidates ORDER BY id ASC`)
	if err != nil {
		return nil, &UnavailableError{Op: "list candidates", Cause: err}
	}
	defer rows.Close()

	var candidates []types.CandidateRecord
	for rows.Next() {
		var candidate types.CandidateRecord
		var profile []byte
		if err := rows.Scan(&candidate.ID, &candidate.Name, &candidate.Profile,
			&candidate.Skills, &candidate.ExperienceYears, &candidate.Location, &profile); err != nil {
			return nil, &UnavailableError{Op: "scan candidate", Cause: err}
		}
		candidate.CulturalProfile, err = unmarshalProfile(profile)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}

func marshalProfile(p types.CulturalProfile) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cultural profile: %w", err)
	}
	return data, nil
}

func unmarshalProfile(data []byte) (types.CulturalProfile, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var p types.CulturalProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cultural profile: %w", err)
	}
	return p, nil
}
