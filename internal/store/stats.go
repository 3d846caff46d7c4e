package store

import (
	"context"
	"fmt"
)

// Stats aggregates across all three event tables. Raw SQL keeps the
// grouped aggregations to three round trips instead of loading every
// row through ent.
func (r *eventRepo) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{
		CallsByModel:   map[string]int{},
		CallsByPurpose: map[string]int{},
		TurnsByKind:    map[string]int{},
	}

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0)
		FROM llm_request_events`,
	).Scan(&st.TotalLLMCalls, &st.FailedLLMCalls, &st.TotalInputTokens, &st.TotalOutputTokens)
	if err != nil {
		return nil, fmt.Errorf("llm totals: %w", err)
	}

	if err := r.groupCount(ctx, `SELECT model, COUNT(*) FROM llm_request_events GROUP BY model`, st.CallsByModel); err != nil {
		return nil, err
	}
	if err := r.groupCount(ctx, `SELECT purpose, COUNT(*) FROM llm_request_events GROUP BY purpose`, st.CallsByPurpose); err != nil {
		return nil, err
	}
	if err := r.groupCount(ctx, `SELECT response_kind, COUNT(*) FROM chat_turn_events GROUP BY response_kind`, st.TurnsByKind); err != nil {
		return nil, err
	}
	for _, n := range st.TurnsByKind {
		st.TotalChatTurns += n
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(correct), 0)
		FROM quiz_result_events`,
	).Scan(&st.TotalQuizzes, &st.QuizQuestions, &st.QuizCorrect)
	if err != nil {
		return nil, fmt.Errorf("quiz totals: %w", err)
	}

	return st, nil
}

// LLMUsageByPurpose aggregates calls, tokens and mean latency per
// purpose label, busiest first.
func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose,
		       COUNT(*),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0),
		       COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0)
		FROM llm_request_events
		GROUP BY purpose
		ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan purpose usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// LLMUsageByModel aggregates calls and tokens per model.
func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model,
		       COUNT(*),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0)
		FROM llm_request_events
		GROUP BY model
		ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("usage by model: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *eventRepo) groupCount(ctx context.Context, query string, dst map[string]int) error {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("group count: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return fmt.Errorf("scan group count: %w", err)
		}
		dst[key] = n
	}
	return rows.Err()
}
