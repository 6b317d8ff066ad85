package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/contract"
)

// withSession runs fn against a throwaway advisor session and ends it
// afterwards, so one-shot commands leave nothing behind.
func (a *App) withSession(ctx context.Context, fn func(sessionID string) error) (err error) {
	sess, err := a.Sessions.Start(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if endErr := a.Sessions.End(ctx, sess.ID); endErr != nil {
			err = errors.Join(err, endErr)
		}
	}()
	return fn(sess.ID)
}

// runOnce applies the optional profile update, then dispatches name with
// args, all inside one throwaway session. Product conflicts found by the
// update are carried on the returned body.
func (a *App) runOnce(ctx context.Context, update map[string]any, name app.ActionName, args map[string]any) (contract.ReplyBody, error) {
	var body contract.ReplyBody
	err := a.withSession(ctx, func(id string) error {
		var conflicts []string
		if update != nil {
			upd, err := a.Sessions.Dispatch(ctx, id, app.ActionUpdateProfile, update)
			if err != nil {
				return fmt.Errorf("applying profile flags: %w", err)
			}
			if upd.Update != nil {
				conflicts = upd.Update.Conflicts
			}
		}
		reply, err := a.Sessions.Dispatch(ctx, id, name, args)
		if err != nil {
			return err
		}
		body = contract.FromReply(reply)
		if len(conflicts) > 0 {
			body.Conflicts = conflicts
		}
		return nil
	})
	return body, err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
