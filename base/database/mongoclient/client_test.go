package mongoclient

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequireTransactions(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	cli := MustConnectMongoClient(uri, "admin", "testdb", false, true, 1)
	defer cli.Disconnect(context.Background())

	err := cli.RequireTransactions(context.Background())
	if os.Getenv("MONGO_STANDALONE") != "" {
		require.ErrorIs(t, err, ErrNoTransactions)
		return
	}
	require.NoError(t, err)
}
