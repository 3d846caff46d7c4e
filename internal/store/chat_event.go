package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendChatTurn(ctx context.Context, data ChatTurnEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.ChatTurnEvent.Create().
		SetSequence(seq).
		SetSubject(data.Subject).
		SetResponseKind(data.ResponseKind).
		SetMcqCount(data.MCQCount).
		SetHadImage(data.HadImage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append chat turn event: %w", err)
	}
	return nil
}
