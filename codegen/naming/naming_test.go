package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AndrewFossAWS/smithy-ruby/codegen/naming"
)

func TestSanitizeTokenLowersAndUnderscores(t *testing.T) {
	assert.Equal(t, "acme_things", naming.SanitizeToken("AcmeThings", "client"))
}

func TestSanitizeTokenStripsInvalidCharsAndCollapsesRuns(t *testing.T) {
	assert.Equal(t, "a_b_c", naming.SanitizeToken("a--b__c", "client"))
}

func TestSanitizeTokenFallsBackWhenEmpty(t *testing.T) {
	assert.Equal(t, "client", naming.SanitizeToken("...", "client"))
}
