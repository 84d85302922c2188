package tui

import (
	"github.com/PortellaAlly/bestprice/internal/catalog"
)

// Search messages carry the sequence number of the request that produced
// them; responses from superseded searches are dropped on arrival.
type searchResultMsg struct {
	seq  int
	resp *catalog.SearchResponse
}

type searchErrMsg struct {
	seq int
	err error
}

type historyResultMsg struct {
	hist *catalog.History
}

type historyErrMsg struct {
	err error
}

type openErrMsg struct {
	err error
}
