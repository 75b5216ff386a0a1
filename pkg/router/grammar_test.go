package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCallback(t *testing.T) {
	tests := []struct {
		name string
		data string
		want ParsedCallback
	}{
		{
			name: "approval approve",
			data: "ap:AbC123xyz-_456:approve",
			want: ParsedCallback{Kind: CallbackApproval, Token: "AbC123xyz-_456", Action: ApprovalActionApprove},
		},
		{
			name: "approval deny",
			data: "ap:tok:deny",
			want: ParsedCallback{Kind: CallbackApproval, Token: "tok", Action: ApprovalActionDeny},
		},
		{
			name: "approval details",
			data: "ap:tok:details",
			want: ParsedCallback{Kind: CallbackApproval, Token: "tok", Action: ApprovalActionDetails},
		},
		{
			name: "approval refresh",
			data: "ap:tok:refresh",
			want: ParsedCallback{Kind: CallbackApproval, Token: "tok", Action: ApprovalActionRefresh},
		},
		{
			name: "approval unknown action",
			data: "ap:tok:explode",
			want: ParsedCallback{Kind: CallbackUnknown},
		},
		{
			name: "approval empty token",
			data: "ap::approve",
			want: ParsedCallback{Kind: CallbackUnknown},
		},
		{
			name: "approval too many segments",
			data: "ap:tok:approve:extra",
			want: ParsedCallback{Kind: CallbackUnknown},
		},
		{
			name: "settings",
			data: "cfg:style:user:detailed",
			want: ParsedCallback{Kind: CallbackSettings, Section: "style", Target: "user", Value: "detailed"},
		},
		{
			name: "settings missing value",
			data: "cfg:style:user:",
			want: ParsedCallback{Kind: CallbackUnknown},
		},
		{
			name: "settings wrong arity",
			data: "cfg:style:user",
			want: ParsedCallback{Kind: CallbackUnknown},
		},
		{
			name: "wallet status",
			data: "wallet:status:sess-1",
			want: ParsedCallback{Kind: CallbackWallet, WalletAction: "status", SessionID: "sess-1"},
		},
		{
			name: "wallet cancel",
			data: "wallet:cancel:sess-1",
			want: ParsedCallback{Kind: CallbackWallet, WalletAction: "cancel", SessionID: "sess-1"},
		},
		{
			name: "wallet unknown action",
			data: "wallet:export:sess-1",
			want: ParsedCallback{Kind: CallbackUnknown},
		},
		{
			name: "unknown prefix",
			data: "other:thing",
			want: ParsedCallback{Kind: CallbackUnknown},
		},
		{
			name: "empty",
			data: "",
			want: ParsedCallback{Kind: CallbackUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCallback(tt.data))
		})
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantCmd  string
		wantArgs []string
		wantOK   bool
	}{
		{name: "bare command", text: "/start", wantCmd: "start", wantOK: true},
		{name: "command with args", text: "/wallet link abc", wantCmd: "wallet", wantArgs: []string{"link", "abc"}, wantOK: true},
		{name: "bot addressing", text: "/settings@emissary_bot", wantCmd: "settings", wantOK: true},
		{name: "uppercase normalized", text: "/START", wantCmd: "start", wantOK: true},
		{name: "leading whitespace", text: "  /network testnet", wantCmd: "network", wantArgs: []string{"testnet"}, wantOK: true},
		{name: "plain text", text: "hello there", wantOK: false},
		{name: "lone slash", text: "/", wantOK: false},
		{name: "empty", text: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, ok := parseCommand(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestIsAllowlistedCommand(t *testing.T) {
	for _, cmd := range []string{"start", "settings", "network", "wallet", "cancel"} {
		assert.True(t, isAllowlistedCommand(cmd), cmd)
	}
	assert.False(t, isAllowlistedCommand("sudo"))
	assert.False(t, isAllowlistedCommand(""))
}

func TestTopicNameFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "short text", text: "Check my balance", want: "Check my balance"},
		{name: "first line only", text: "Swap tokens\nand then some detail", want: "Swap tokens"},
		{name: "word boundary cut", text: "Please send one hundred tokens to my good friend", want: "Please send one hundred tokens"},
		{name: "no spaces hard cut", text: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", want: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
		{name: "empty", text: "", want: "New topic"},
		{name: "whitespace only", text: "   \n  ", want: "New topic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopicNameFromText(tt.text)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), maxTopicNameLength)
		})
	}
}
