package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunParallelTasksKeepsOrder(t *testing.T) {
	tasks := []ParallelTask{
		func() (interface{}, error) { return "first", nil },
		func() (interface{}, error) { return nil, errors.New("boom") },
		func() (interface{}, error) { return 3, nil },
	}

	results, errs := RunParallelTasks(tasks)

	assert.Equal(t, "first", results[0])
	assert.NoError(t, errs[0])
	assert.Nil(t, results[1])
	assert.EqualError(t, errs[1], "boom")
	assert.Equal(t, 3, results[2])
	assert.NoError(t, errs[2])
}

func TestRunParallelTasksEmpty(t *testing.T) {
	results, errs := RunParallelTasks(nil)
	assert.Empty(t, results)
	assert.Empty(t, errs)
}
