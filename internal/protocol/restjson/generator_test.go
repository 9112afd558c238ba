package restjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol"
	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol/restjson"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
)

func TestGeneratorImplementsProtocolGeneratorInterface(t *testing.T) {
	var _ protocol.Generator = restjson.New(symbols.NewProvider("Acme"))
}

func TestGeneratorProtocolIDMatchesRestJson1(t *testing.T) {
	gen := restjson.New(symbols.NewProvider("Acme"))
	assert.Equal(t, "aws.protocols#restJson1", gen.ProtocolID())
}

func TestGeneratorApplicationTransportIsDefaultHTTP(t *testing.T) {
	gen := restjson.New(symbols.NewProvider("Acme"))
	tr := gen.ApplicationTransport()
	assert.NotNil(t, tr.DefaultMiddleware)
	assert.NotEmpty(t, tr.ConfigKeys)
}
