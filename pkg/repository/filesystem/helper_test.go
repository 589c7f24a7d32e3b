package filesystem_test

import (
	"time"

	"github.com/sujeethshingade/docster/pkg/domain/model"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

func testConversation(name types.RepoName, ts time.Time) *model.Conversation {
	return &model.Conversation{
		RepoName:  name,
		Question:  "What does main.go do?",
		Answer:    "It starts the server.",
		Timestamp: ts,
	}
}
