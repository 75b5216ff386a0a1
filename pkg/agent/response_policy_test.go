package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emissary-bot/emissary/pkg/models"
)

func TestApplyResponsePolicy_ApprovedCallbackForcesStatus(t *testing.T) {
	tests := []struct {
		name        string
		rawText     string
		wantReasked bool
	}{
		{name: "empty reply", rawText: ""},
		{name: "trivial reply", rawText: "Done."},
		{name: "trivial with whitespace", rawText: "  all set  "},
		{name: "plain text re-ask", rawText: "Do you approve this transaction?", wantReasked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ApplyResponsePolicy(PolicyInput{
				RawText:          tt.rawText,
				ApprovedCallback: true,
			})

			assert.True(t, out.ForcedApprovedStatus)
			assert.True(t, strings.HasPrefix(out.Text, approvedStatusPrefix))
			assert.Equal(t, tt.wantReasked, out.ReaskBlocked)
		})
	}
}

func TestApplyResponsePolicy_ApprovedStatusSummarizesResults(t *testing.T) {
	out := ApplyResponsePolicy(PolicyInput{
		RawText:          "",
		ApprovedCallback: true,
		ToolResults: []models.ToolResultPart{
			{
				CallID:  "c1",
				Name:    "send",
				Content: `{"destination":"EQabc123","tx_hash":"deadbeef"}`,
			},
			{
				CallID:  "c2",
				Name:    "send",
				Content: `{"error":"boom"}`,
				IsError: true,
			},
		},
	})

	assert.True(t, out.ForcedApprovedStatus)
	assert.Contains(t, out.Text, "Destination: EQabc123")
	assert.Contains(t, out.Text, "Hash: deadbeef")
	assert.NotContains(t, out.Text, "boom")
}

func TestApplyResponsePolicy_SubstantiveApprovedReplyPassesThrough(t *testing.T) {
	out := ApplyResponsePolicy(PolicyInput{
		RawText:          "Transfer of 2 units sent. Hash: abc123.",
		ApprovedCallback: true,
	})

	assert.False(t, out.ForcedApprovedStatus)
	assert.Equal(t, "Transfer of 2 units sent. Hash: abc123.", out.Text)
}

func TestApplyResponsePolicy_PendingSuffix(t *testing.T) {
	out := ApplyResponsePolicy(PolicyInput{
		RawText:          "I prepared the transfer.",
		PendingApprovals: 1,
	})

	assert.True(t, strings.HasSuffix(out.Text, pendingSuffix))
	assert.True(t, strings.HasPrefix(out.Text, "I prepared the transfer."))
}

func TestApplyResponsePolicy_TrivialReplySynthesizesCompletion(t *testing.T) {
	out := ApplyResponsePolicy(PolicyInput{
		RawText:     "ok",
		UserRequest: "check my balance",
	})

	assert.False(t, out.ForcedApprovedStatus)
	assert.Contains(t, out.Text, "check my balance")
	assert.NotEqual(t, "ok", out.Text)
}

func TestApplyResponsePolicy_LongRequestQuoteTruncated(t *testing.T) {
	request := strings.Repeat("a", 300)
	out := ApplyResponsePolicy(PolicyInput{
		RawText:     "",
		UserRequest: request,
	})

	assert.NotContains(t, out.Text, request)
	assert.Contains(t, out.Text, strings.Repeat("a", 120)+"…")
}

func TestApplyResponsePolicy_EmptyEverythingFallsBack(t *testing.T) {
	out := ApplyResponsePolicy(PolicyInput{})
	assert.Equal(t, genericFailureLine, out.Text)
}

func TestApplyResponsePolicy_NormalReplyUntouched(t *testing.T) {
	out := ApplyResponsePolicy(PolicyInput{
		RawText:     "Your balance is 12.5 units.",
		UserRequest: "balance?",
	})

	assert.Equal(t, "Your balance is 12.5 units.", out.Text)
	assert.False(t, out.ForcedApprovedStatus)
	assert.False(t, out.ReaskBlocked)
}

func TestIsTrivial(t *testing.T) {
	assert.True(t, isTrivial("Done"))
	assert.True(t, isTrivial("done."))
	assert.True(t, isTrivial("  OK  "))
	assert.False(t, isTrivial("Done — transferred 2 units"))
	assert.False(t, isTrivial(""))
}

func TestContainsReask(t *testing.T) {
	assert.True(t, containsReask("Please approve the transfer."))
	assert.True(t, containsReask("Shall I proceed with this?"))
	assert.False(t, containsReask("The transfer is approved and sent."))
}
