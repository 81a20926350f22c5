package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"settings-api/core/domain"
	"settings-api/core/environment"
	coreerrors "settings-api/core/errors"
	"settings-api/core/executor"
	"settings-api/core/interfaces"
	"settings-api/core/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsBody = `{"settingDtoList":[
	{"settingUuid":"u1","type":"COMPANY","key":"greeting","value":"aGVsbG8Kd29ybGQKZm9v","encoded":true,"encrypted":false,"owner":"5","revision":"2","deleted":"false","created":"c","modified":"m"},
	{"settingUuid":"u2","type":"COMPANY","key":"secret","value":"c2VjcmV0","encoded":true,"encrypted":true,"owner":"5","revision":"1","deleted":"false","created":"c","modified":"m"},
	{"setting_uuid":"u3","type":"USER","key":"plain","value":"one\ntwo\nthree\nfour","encoded":false,"encrypted":false,"owner":"7","revision":"9","deleted":"true","created":"c","modified":"m"}
]}`

func newTestService(client interfaces.HTTPClient) *Service {
	resolver := environment.NewResolver(map[domain.Environment]domain.Endpoint{
		domain.EnvironmentIntegration: {BaseURL: "https://in.example.com/api/", Token: "in-token-0123456789"},
	})
	exec := executor.NewExecutor(resolver, interfaces.Dependencies{HTTPClient: client},
		executor.RetryPolicy{MaxAttempts: 3, InitialDelay: time.Millisecond})
	return NewService(exec, nil)
}

func respondWith(status int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: status, body: body}, nil
		},
	}
}

func baseQuery() Query {
	return Query{Environment: domain.EnvironmentIntegration, CompanyID: "42"}
}

func TestList_DecodesAndNormalizes(t *testing.T) {
	client := respondWith(200, settingsBody)
	svc := newTestService(client)

	list, err := svc.List(context.Background(), baseQuery())

	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "u1", list[0].UUID)
	assert.Equal(t, "hello\nworld\nfoo", list[0].Value)
	assert.Equal(t, 5, list[0].Owner)
	assert.Equal(t, 2, list[0].Revision)

	assert.Equal(t, "c2VjcmV0", list[1].Value, "encrypted values are never decoded")

	assert.Equal(t, "u3", list[2].UUID)
	assert.True(t, list[2].Deleted)

	require.Len(t, client.urls, 1)
	assert.Equal(t, "https://in.example.com/api/setting/company/42", client.urls[0])
}

func TestList_ForwardsFilters(t *testing.T) {
	client := respondWith(200, `{"settingDtoList":[]}`)
	svc := newTestService(client)

	q := baseQuery()
	q.KeyName = "greeting"
	q.Type = "COMPANY"
	q.Owner = "5"
	q.ChildObject = "true"

	list, err := svc.List(context.Background(), q)

	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, "https://in.example.com/api/setting/company/42?child-object=true&key-name=greeting&owner=5&type=COMPANY", client.urls[0])
}

func TestList_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		client *mockHTTPClient
		check  func(error) bool
	}{
		{name: "unauthorized", client: respondWith(401, ""), check: coreerrors.IsAuthentication},
		{name: "forbidden", client: respondWith(403, ""), check: coreerrors.IsAuthentication},
		{name: "server error", client: respondWith(503, "down"), check: coreerrors.IsTransient},
		{name: "not found upstream", client: respondWith(404, ""), check: coreerrors.IsExternalAPI},
		{name: "malformed body", client: respondWith(200, "not a payload"), check: coreerrors.IsParse},
		{
			name: "network",
			client: &mockHTTPClient{getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
				return nil, errors.New("connection refused")
			}},
			check: coreerrors.IsTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.client)
			_, err := svc.List(context.Background(), baseQuery())
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error type: %T %v", err, err)
		})
	}
}

func TestList_UnconfiguredEnvironment(t *testing.T) {
	client := respondWith(200, settingsBody)
	svc := newTestService(client)

	q := baseQuery()
	q.Environment = domain.EnvironmentProduction
	_, err := svc.List(context.Background(), q)

	require.Error(t, err)
	assert.True(t, coreerrors.IsConfiguration(err))
	assert.Empty(t, client.urls)
}

func TestQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Query)
		wantErr bool
	}{
		{name: "valid", mutate: func(q *Query) {}},
		{name: "unknown environment", mutate: func(q *Query) { q.Environment = "qa" }, wantErr: true},
		{name: "missing company", mutate: func(q *Query) { q.CompanyID = " " }, wantErr: true},
		{name: "non numeric company", mutate: func(q *Query) { q.CompanyID = "acme" }, wantErr: true},
		{name: "unknown type", mutate: func(q *Query) { q.Type = "company" }, wantErr: true},
		{name: "known type", mutate: func(q *Query) { q.Type = "SCHEDULING_UNIT" }},
		{name: "non numeric owner", mutate: func(q *Query) { q.Owner = "me" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := baseQuery()
			tt.mutate(&q)
			err := q.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, coreerrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValue_PaginatesDecodedValue(t *testing.T) {
	svc := newTestService(respondWith(200, settingsBody))

	q := baseQuery()
	q.KeyName = "greeting"
	res, err := svc.Value(context.Background(), q, domain.PageOptions{Limit: pagination.Int(2)})

	require.NoError(t, err)
	assert.Equal(t, "greeting", res.Setting.Key)
	assert.Equal(t, []string{"hello", "world"}, res.Page.Lines)
	assert.Equal(t, 3, res.Page.TotalLines)
	assert.True(t, res.Page.HasMore)
}

func TestValue_EncryptedIsPaginatedVerbatim(t *testing.T) {
	svc := newTestService(respondWith(200, settingsBody))

	q := baseQuery()
	q.KeyName = "secret"
	res, err := svc.Value(context.Background(), q, domain.PageOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{"c2VjcmV0"}, res.Page.Lines)
}

func TestValue_MissingKey(t *testing.T) {
	svc := newTestService(respondWith(200, settingsBody))

	q := baseQuery()
	q.KeyName = "absent"
	_, err := svc.Value(context.Background(), q, domain.PageOptions{})
	require.Error(t, err)
	assert.True(t, coreerrors.IsNotFound(err))

	q.KeyName = ""
	_, err = svc.Value(context.Background(), q, domain.PageOptions{})
	require.Error(t, err)
	assert.True(t, coreerrors.IsValidation(err))
}

func TestSearch_FindsMatches(t *testing.T) {
	svc := newTestService(respondWith(200, settingsBody))

	q := baseQuery()
	q.KeyName = "plain"
	res, err := svc.Search(context.Background(), q, "T", 1)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Result.TotalMatches)
	assert.Equal(t, 2, res.Result.Matches[0].LineNumber)
	assert.Equal(t, 3, res.Result.Matches[1].LineNumber)
	assert.Equal(t, "    1: one\n>>> 2: two\n    3: three", res.Result.Matches[0].Context)
}

func TestSearch_RefusesEncrypted(t *testing.T) {
	svc := newTestService(respondWith(200, settingsBody))

	q := baseQuery()
	q.KeyName = "secret"
	_, err := svc.Search(context.Background(), q, "sec", 3)

	require.Error(t, err)
	assert.True(t, coreerrors.IsValidation(err))
	assert.Contains(t, err.Error(), "encrypted")
}

func TestSearch_EmptyTermSkipsRequest(t *testing.T) {
	client := respondWith(200, settingsBody)
	svc := newTestService(client)

	q := baseQuery()
	q.KeyName = "plain"
	_, err := svc.Search(context.Background(), q, "", 3)

	require.Error(t, err)
	assert.True(t, coreerrors.IsValidation(err))
	assert.Empty(t, client.urls)
}
