package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"duelboard/internal/rules"
	"duelboard/internal/server/game"
	"duelboard/internal/testutil"
)

func newTestApp(t *testing.T) (*Handler, func(method, path string, body any) (int, []byte)) {
	t.Helper()
	h := NewHandler(game.NewManager())
	app := NewApp(h, Options{Quiet: true})
	do := func(method, path string, body any) (int, []byte) {
		t.Helper()
		var rd io.Reader
		if body != nil {
			raw, err := json.Marshal(body)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			rd = bytes.NewReader(raw)
		}
		req := httptest.NewRequest(method, path, rd)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("%s %s: %v", method, path, err)
		}
		defer resp.Body.Close()
		out, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		return resp.StatusCode, out
	}
	return h, do
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	return v
}

func createGame(t *testing.T, do func(string, string, any) (int, []byte), kind string) CreateResponse {
	t.Helper()
	status, body := do(http.MethodPost, "/api/game/create", CreateRequest{Game: kind})
	if status != http.StatusCreated {
		t.Fatalf("create: status %d body %s", status, body)
	}
	return decode[CreateResponse](t, body)
}

func TestCreateAndFetchGame(t *testing.T) {
	_, do := newTestApp(t)
	created := createGame(t, do, "checkers")
	testutil.AssertEqual(t, created.State.Game, "checkers")
	testutil.AssertEqual(t, created.State.Position, rules.NewBoard(rules.Checkers).Encode())
	testutil.AssertEqual(t, created.State.ToMove, "white")

	status, body := do(http.MethodGet, "/api/game/"+created.GameID, nil)
	testutil.AssertEqual(t, status, http.StatusOK)
	testutil.AssertEqual(t, decode[StateResponse](t, body), created.State)
}

func TestCreateRejectsUnknownGame(t *testing.T) {
	_, do := newTestApp(t)
	status, body := do(http.MethodPost, "/api/game/create", CreateRequest{Game: "go"})
	testutil.AssertEqual(t, status, http.StatusBadRequest)
	testutil.AssertTrue(t, bytes.Contains(body, []byte("unknown game type")), "body %s", body)
}

func TestUnknownGameIs404(t *testing.T) {
	_, do := newTestApp(t)
	status, _ := do(http.MethodGet, "/api/game/nope", nil)
	testutil.AssertEqual(t, status, http.StatusNotFound)
	status, _ = do(http.MethodPost, "/api/game/nope/move", MoveDTO{From: "e2", To: "e4"})
	testutil.AssertEqual(t, status, http.StatusNotFound)
}

func TestMovesEndpoint(t *testing.T) {
	_, do := newTestApp(t)
	created := createGame(t, do, "chess")

	status, body := do(http.MethodGet, "/api/game/"+created.GameID+"/moves?from=a2", nil)
	testutil.AssertEqual(t, status, http.StatusOK)
	testutil.AssertEqual(t, decode[MovesResponse](t, body), MovesResponse{From: "a2", Moves: []string{"a3", "b3"}})

	status, _ = do(http.MethodGet, "/api/game/"+created.GameID+"/moves?from=z9", nil)
	testutil.AssertEqual(t, status, http.StatusBadRequest)
}

func TestMoveAndUndoFlow(t *testing.T) {
	_, do := newTestApp(t)
	created := createGame(t, do, "checkers")
	base := "/api/game/" + created.GameID

	for _, mv := range []MoveDTO{{"c3", "d4"}, {"f6", "e5"}, {"d4", "f6"}} {
		status, body := do(http.MethodPost, base+"/move", mv)
		if status != http.StatusOK {
			t.Fatalf("move %v: status %d body %s", mv, status, body)
		}
	}

	status, body := do(http.MethodGet, base, nil)
	testutil.AssertEqual(t, status, http.StatusOK)
	state := decode[StateResponse](t, body)
	testutil.AssertEqual(t, state.ToMove, "black")
	testutil.AssertEqual(t, state.MoveCount, map[string]int{"white": 2, "black": 1})
	testutil.AssertEqual(t, len(state.History), 3)
	testutil.AssertEqual(t, state.History[2].Captured, &PieceDTO{Color: "black", Kind: "checker", Square: "e5"})

	status, body = do(http.MethodPost, base+"/undo", UndoRequest{Steps: 10})
	testutil.AssertEqual(t, status, http.StatusOK)
	undo := decode[UndoResponse](t, body)
	testutil.AssertEqual(t, undo.Undone, 3)
	testutil.AssertEqual(t, undo.State.Position, created.State.Position)
	testutil.AssertEqual(t, undo.State.ToMove, "white")
	testutil.AssertEqual(t, undo.State.Hash, created.State.Hash)
}

func TestRejectedMoveLeavesStateAlone(t *testing.T) {
	_, do := newTestApp(t)
	created := createGame(t, do, "chess")
	base := "/api/game/" + created.GameID

	for _, mv := range []MoveDTO{{"e7", "e5"}, {"e2", "e5"}, {"e4", "e5"}, {"xx", "e4"}} {
		status, _ := do(http.MethodPost, base+"/move", mv)
		testutil.AssertEqual(t, status, http.StatusBadRequest, "move %v", mv)
	}
	_, body := do(http.MethodGet, base, nil)
	testutil.AssertEqual(t, decode[StateResponse](t, body), created.State)
}

func TestDeleteGame(t *testing.T) {
	h, do := newTestApp(t)
	created := createGame(t, do, "chess")
	status, _ := do(http.MethodDelete, "/api/game/"+created.GameID, nil)
	testutil.AssertEqual(t, status, http.StatusNoContent)
	testutil.AssertEqual(t, h.Games().Len(), 0)
}

func TestPlainRequestToSocketNeedsUpgrade(t *testing.T) {
	_, do := newTestApp(t)
	status, _ := do(http.MethodGet, "/ws/game/whatever", nil)
	testutil.AssertEqual(t, status, http.StatusUpgradeRequired)
}

func TestDispatch(t *testing.T) {
	s := game.NewManager().NewGame(rules.Chess)

	reply, changed := dispatch(s, newMessage(MessageMove, MoveDTO{From: "b1", To: "b3"}))
	testutil.AssertTrue(t, changed)
	testutil.AssertEqual(t, reply.Type, MessageState)
	state := decode[StateResponse](t, reply.Payload)
	testutil.AssertEqual(t, state.ToMove, "black")

	reply, changed = dispatch(s, newMessage(MessageMove, MoveDTO{From: "b3", To: "b5"}))
	testutil.AssertFalse(t, changed)
	testutil.AssertEqual(t, reply.Type, MessageError)

	reply, changed = dispatch(s, Message{Type: MessageState})
	testutil.AssertFalse(t, changed)
	testutil.AssertEqual(t, decode[StateResponse](t, reply.Payload).MoveCount["white"], 1)

	reply, changed = dispatch(s, Message{Type: MessageUndo})
	testutil.AssertTrue(t, changed)
	testutil.AssertEqual(t, decode[StateResponse](t, reply.Payload).ToMove, "white")

	_, changed = dispatch(s, Message{Type: MessageUndo})
	testutil.AssertFalse(t, changed)

	reply, _ = dispatch(s, Message{Type: "resign"})
	testutil.AssertEqual(t, reply.Type, MessageError)
}
