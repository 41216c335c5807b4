package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casual-erp/casual-web/ccli"
)

func TestParseArgs(t *testing.T) {
	args, err := parseArgs([]string{"5", "-t", "Foo", "--minutes-spent", "30"})
	require.NoError(t, err)
	assert.Equal(t, "5 -t Foo --minutes-spent 30", ccli.Marshal(args))

	args, err = parseArgs(nil)
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestParseArgsErrors(t *testing.T) {
	_, err := parseArgs([]string{"-t"})
	assert.Error(t, err)

	_, err = parseArgs([]string{"abc"})
	assert.Error(t, err)
}
