package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidgetLimit(t *testing.T) {
	assert.Equal(t, int64(5), widgetLimit(""))
	assert.Equal(t, int64(5), widgetLimit("abc"))
	assert.Equal(t, int64(5), widgetLimit("0"))
	assert.Equal(t, int64(5), widgetLimit("-2"))
	assert.Equal(t, int64(7), widgetLimit("7"))
}
