package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.QuizResultEvent.Create().
		SetSequence(seq).
		SetSubject(data.Subject).
		SetTotal(data.Total).
		SetCorrect(data.Correct).
		SetRetried(data.Retried).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append quiz result event: %w", err)
	}
	return nil
}
