package awss3

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func requestFailure(status int) awserr.RequestFailure {
	base := awserr.New("TestError", "test error", nil)
	return awserr.NewRequestFailure(base, status, "req-id")
}

func TestProbeSaysAbsent(t *testing.T) {
	// Only the client-error classes mean "no such bucket"
	assert.True(t, probeSaysAbsent(requestFailure(400)))
	assert.True(t, probeSaysAbsent(requestFailure(403)))
	assert.True(t, probeSaysAbsent(requestFailure(404)))

	// Server-side faults must be re-raised, not swallowed
	assert.False(t, probeSaysAbsent(requestFailure(500)))
	assert.False(t, probeSaysAbsent(requestFailure(503)))

	// Non-AWS errors (e.g. connection refused) are never "absent"
	assert.False(t, probeSaysAbsent(errors.New("dial tcp: connection refused")))
}
