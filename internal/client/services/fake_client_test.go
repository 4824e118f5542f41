package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/socialcli/internal/client/client"
	"github.com/dmitrijs2005/socialcli/internal/client/tokens"
)

type call struct {
	Method    string
	Path      string
	Body      string
	Anonymous bool
}

type reply struct {
	out any
	err error
}

// fakeClient implements client.Client for service unit tests. Replies are
// keyed by "METHOD path"; unknown routes answer 404.
type fakeClient struct {
	mu      sync.Mutex
	replies map[string]reply
	calls   []call

	store *tokens.MemoryStore

	refreshCalls int
	refreshErr   error
}

func newFakeClient() *fakeClient {
	return &fakeClient{replies: map[string]reply{}, store: tokens.NewMemoryStore()}
}

func (f *fakeClient) on(method, path string, out any, err error) *fakeClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[method+" "+path] = reply{out: out, err: err}
	return f
}

func (f *fakeClient) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeClient) Send(_ context.Context, req client.Request) (*client.Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{Method: req.Method, Path: req.Path, Body: string(req.Body), Anonymous: req.Anonymous})
	r, ok := f.replies[req.Method+" "+req.Path]
	f.mu.Unlock()

	if !ok {
		return nil, &client.APIError{StatusCode: http.StatusNotFound, Detail: "Not found."}
	}
	if r.err != nil {
		return nil, r.err
	}

	resp := &client.Response{StatusCode: http.StatusOK, Header: http.Header{}}
	if r.out != nil {
		b, err := json.Marshal(r.out)
		if err != nil {
			return nil, err
		}
		resp.Body = b
	}
	return resp, nil
}

func (f *fakeClient) Do(ctx context.Context, method, path string, in, out any) error {
	req, err := client.NewJSONRequest(method, path, in)
	if err != nil {
		return err
	}
	resp, err := f.Send(ctx, req)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

func (f *fakeClient) Refresh(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshCalls++
	return f.refreshErr
}

func (f *fakeClient) StoreTokens(ctx context.Context, access, refresh string) error {
	return f.store.Set(ctx, map[tokens.Slot]string{tokens.SlotAccess: access, tokens.SlotRefresh: refresh})
}

func (f *fakeClient) ClearTokens(ctx context.Context) error {
	return f.store.Delete(ctx, tokens.SlotAccess, tokens.SlotRefresh, tokens.SlotUser)
}

func (f *fakeClient) GetTokens(ctx context.Context) (tokens.Pair, error) {
	return tokens.ReadPair(ctx, f.store)
}
