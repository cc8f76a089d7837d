package networking

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestHTTPTransport(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recipes.json":
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			_, _ = w.Write([]byte(`{"recipes":[]}`))
		case "/recipes-empty.json":
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	transport := NewHTTPTransport(5 * time.Second)

	data, err := transport.Fetch(context.Background(), mustParse(t, srv.URL+"/recipes.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"recipes":[]}`, string(data))

	data, err = transport.Fetch(context.Background(), mustParse(t, srv.URL+"/recipes-empty.json"))
	require.NoError(t, err)
	assert.Empty(t, data)

	_, err = transport.Fetch(context.Background(), mustParse(t, srv.URL+"/missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPTransportHonoursContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPTransport(time.Second).Fetch(ctx, mustParse(t, srv.URL))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRemotePipelineClassifiesStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/" + RemoteAllRecipes:
			_, _ = w.Write([]byte(`{"recipes":[{"name":"Kumpir","cuisine":"Turkish"}]}`))
		case "/" + RemoteEmptyRecipes:
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	mux := NewMuxTransport().
		Handle(NewHTTPTransport(time.Second), "http", "https").
		Handle(BundledTransport(), "embed")
	p := NewPipeline(RemotePresets(srv.URL+"/"), mux, nil)

	all := p.Fetch(context.Background(), AllRecipes)
	require.True(t, all.OK())
	assert.Len(t, all.Recipes(), 1)

	empty := p.Fetch(context.Background(), EmptyRecipes)
	require.False(t, empty.OK())
	assert.Equal(t, KindEmptyPayload, empty.Err().Kind)

	malformed := p.Fetch(context.Background(), MalformedRecipes)
	require.False(t, malformed.OK())
	assert.Equal(t, KindTransportFailure, malformed.Err().Kind)

	demo := p.Fetch(context.Background(), DemoRecipes)
	assert.True(t, demo.OK())
}

func TestMuxTransportUnknownScheme(t *testing.T) {
	t.Parallel()

	_, err := NewMuxTransport().Fetch(context.Background(), mustParse(t, "ftp://host/file.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ftp")
}

func TestFSTransport(t *testing.T) {
	t.Parallel()

	transport := NewFSTransport(fstest.MapFS{"a.json": {Data: []byte("{}")}})

	data, err := transport.Fetch(context.Background(), mustParse(t, "embed:///a.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	data, err = transport.Fetch(context.Background(), mustParse(t, "embed:a.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	_, err = transport.Fetch(context.Background(), mustParse(t, "embed:///b.json"))
	assert.Error(t, err)
}

type fakeS3 struct {
	objects map[string][]byte
	getErr  error
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func TestS3Transport(t *testing.T) {
	t.Parallel()

	client := &fakeS3{}
	transport := NewS3TransportWithClient(client)

	require.NoError(t, transport.Put(context.Background(), "recipes", S3Key("v1", AllRecipes), strings.NewReader(`{"recipes":[]}`)))

	data, err := transport.Fetch(context.Background(), mustParse(t, "s3://recipes/v1/AllRecipes.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"recipes":[]}`, string(data))

	_, err = transport.Fetch(context.Background(), mustParse(t, "s3://recipes/v1/EmptyRecipes.json"))
	assert.Error(t, err)

	_, err = transport.Fetch(context.Background(), mustParse(t, "s3://recipes"))
	assert.Error(t, err)
}

func TestS3PresetsPipeline(t *testing.T) {
	t.Parallel()

	client := &fakeS3{objects: map[string][]byte{
		"bucket/" + S3Key("", AllRecipes): []byte(`{"recipes":[{"name":"Kumpir","cuisine":"Turkish"}]}`),
	}}
	mux := NewMuxTransport().
		Handle(NewS3TransportWithClient(client), "s3").
		Handle(BundledTransport(), "embed")
	p := NewPipeline(S3Presets("bucket", ""), mux, nil)

	assert.True(t, p.Fetch(context.Background(), AllRecipes).OK())
	assert.Equal(t, KindTransportFailure, p.Fetch(context.Background(), EmptyRecipes).Err().Kind)
	assert.True(t, p.Fetch(context.Background(), DemoRecipes).OK())
}

func TestOversizedPayloadIsTransportFailure(t *testing.T) {
	t.Parallel()

	// a well-formed document one byte over the cap
	head, tail := `{"recipes":[{"name":"Kumpir","cuisine":"Turkish","source_url":"`, `"}]}`
	pad := strings.Repeat("a", maxPayloadBytes+1-len(head)-len(tail))
	oversized := head + pad + tail
	atCap := head + pad[1:] + tail

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/" + RemoteAllRecipes:
			_, _ = w.Write([]byte(oversized))
		case "/" + RemoteMalformedRecipes:
			_, _ = w.Write([]byte(atCap))
		}
	}))
	defer srv.Close()

	transport := NewHTTPTransport(5 * time.Second)
	_, err := transport.Fetch(context.Background(), mustParse(t, srv.URL+"/"+RemoteAllRecipes))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload exceeds 10485760 bytes")

	data, err := transport.Fetch(context.Background(), mustParse(t, srv.URL+"/"+RemoteMalformedRecipes))
	require.NoError(t, err)
	assert.Len(t, data, maxPayloadBytes)

	p := NewPipeline(RemotePresets(srv.URL), transport, nil)
	result := p.Fetch(context.Background(), AllRecipes)
	require.False(t, result.OK())
	assert.Equal(t, KindTransportFailure, result.Err().Kind)

	client := &fakeS3{objects: map[string][]byte{"bucket/big.json": []byte(oversized)}}
	_, err = NewS3TransportWithClient(client).Fetch(context.Background(), mustParse(t, "s3://bucket/big.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload exceeds")
}
