package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abhisek/doubtbox/ent"
	"github.com/abhisek/doubtbox/ent/llmrequestevent"
)

// eventRepo implements EventRepo on top of the ent client, with the
// shared sequence counter assigning global ordering.
type eventRepo struct {
	client *ent.Client
	db     *sql.DB
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seq).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventData, error) {
	q := r.client.LLMRequestEvent.Query()

	if opts.Purpose != "" {
		q = q.Where(llmrequestevent.PurposeEQ(opts.Purpose))
	}
	if opts.Model != "" {
		q = q.Where(llmrequestevent.ModelEQ(opts.Model))
	}
	if opts.OnlyErrors {
		q = q.Where(llmrequestevent.SuccessEQ(false))
	}
	if !opts.Since.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.Since))
	}

	q = q.Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	out := make([]LLMRequestEventData, 0, len(rows))
	for _, row := range rows {
		out = append(out, llmEventData(row))
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventData, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get llm event %d: %w", id, err)
	}
	data := llmEventData(row)
	return &data, nil
}

func llmEventData(row *ent.LLMRequestEvent) LLMRequestEventData {
	return LLMRequestEventData{
		ID:           row.ID,
		Sequence:     row.Sequence,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
	}
}
