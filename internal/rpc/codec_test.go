package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestJSONCodec_Registered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, CodecName, codec.Name())
}

func TestJSONCodec_MarshalUnmarshal(t *testing.T) {
	type msg struct {
		Alias string `json:"alias"`
	}

	data, err := JSONCodec{}.Marshal(msg{Alias: "a@b.c"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"alias":"a@b.c"}`, string(data))

	var got msg
	require.NoError(t, JSONCodec{}.Unmarshal(data, &got))
	assert.Equal(t, "a@b.c", got.Alias)

	require.NoError(t, JSONCodec{}.Unmarshal(nil, &got))

	assert.Error(t, JSONCodec{}.Unmarshal([]byte("{"), &got))
	_, err = JSONCodec{}.Marshal(make(chan int))
	assert.Error(t, err)
}

func TestFullMethod(t *testing.T) {
	assert.Equal(t, "/ephemeralsessions.v1.SessionAPI/Status", FullMethod(MethodStatus))
}
