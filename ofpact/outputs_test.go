package ofpact

import (
	"testing"

	"github.com/fraant/ofpact/port"
	"github.com/stretchr/testify/assert"
)

func TestOutputsToPort(t *testing.T) {
	var list Actlist
	list.append(Entry{Kind: KindOutput, Port: 3})
	list.append(Entry{Kind: KindEnqueue, Port: 5, QueueID: 1})
	list.append(Entry{Kind: KindController, MaxLen: 64})
	list.finish()

	assert.True(t, OutputsToPort(&list, 3))
	assert.True(t, OutputsToPort(&list, 5))
	assert.True(t, OutputsToPort(&list, port.Controller))
	assert.False(t, OutputsToPort(&list, 9))
}

func TestOutputsToPort_Empty(t *testing.T) {
	var list Actlist
	list.finish()
	assert.False(t, OutputsToPort(&list, 1))
}
