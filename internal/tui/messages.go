package tui

import (
	"github.com/MKhiriev/ether-notes/models"
)

type reloadedMsg struct {
	result models.ReloadResult
	err    error
}

// stageMsg carries one progress step of a running write. ch is the channel
// it came from so the model can keep listening.
type stageMsg struct {
	stage models.TxStage
	ch    <-chan models.TxStage
}

type submittedMsg struct {
	record models.TxRecord
	err    error
}

type mintedMsg struct {
	record models.TxRecord
	err    error
}

type exportedMsg struct {
	paths []string
	err   error
}

type copiedMsg struct {
	err error
}

type displayNameMsg struct {
	name string
}

// clearToastMsg hides the toast with the matching id; newer toasts survive.
type clearToastMsg struct {
	id int
}
