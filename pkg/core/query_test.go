package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryStatus(t *testing.T) {
	ctx, st := WithQueryStatus(context.Background())

	ReportQuery(ctx, CommandResult{Stdout: "ok"})
	_, failed := st.Failed()
	require.False(t, failed)

	ReportQuery(ctx, CommandResult{ExitCode: 1, Stderr: "first"})
	ReportQuery(ctx, Faulted(MsgTimedOut))
	res, failed := st.Failed()
	require.True(t, failed)
	require.Equal(t, "first", res.Stderr)
}

func TestReportQuery_WithoutStatus(t *testing.T) {
	require.NotPanics(t, func() {
		ReportQuery(context.Background(), CommandResult{ExitCode: 1})
	})
}
