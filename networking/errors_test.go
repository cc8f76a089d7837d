package networking

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchErrorEquality(t *testing.T) {
	t.Parallel()

	a := NewFetchError(KindTransportFailure, errors.New("timeout"))
	b := NewFetchError(KindTransportFailure, errors.New("timeout"))
	c := NewFetchError(KindTransportFailure, errors.New("refused"))
	d := NewFetchError(KindDecodeFailure, errors.New("timeout"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.True(t, (*FetchError)(nil).Equal(nil))
	assert.False(t, a.Equal(nil))

	assert.True(t, NewFetchError(KindEmptyPayload, nil).Equal(ErrEmptyPayload))
}

func TestFetchErrorIs(t *testing.T) {
	t.Parallel()

	err := NewFetchError(KindTransportFailure, errors.New("timeout"))
	wrapped := fmt.Errorf("reload: %w", err)

	assert.ErrorIs(t, err, ErrTransportFailure)
	assert.ErrorIs(t, wrapped, ErrTransportFailure)
	assert.NotErrorIs(t, err, ErrDecodeFailure)
	assert.ErrorIs(t, err, NewFetchError(KindTransportFailure, errors.New("timeout")))
	assert.NotErrorIs(t, err, NewFetchError(KindTransportFailure, errors.New("refused")))

	var fe *FetchError
	assert.True(t, errors.As(wrapped, &fe))
	assert.Equal(t, KindTransportFailure, fe.Kind)
}

func TestFetchErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "no recipes returned", ErrEmptyPayload.Error())
	assert.Equal(t, "transport failed: timeout", NewFetchError(KindTransportFailure, errors.New("timeout")).Error())
	assert.Equal(t, "empty_payload", KindEmptyPayload.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}
