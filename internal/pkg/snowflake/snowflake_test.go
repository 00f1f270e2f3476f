package snowflake

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewNodeGenerator(t *testing.T) {
	testcases := []struct {
		name        string
		nodeId      int64
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:   "nodeId超出限制",
			nodeId: 1024,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:   "nodeId为负数",
			nodeId: -1,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:        "生成正常",
			nodeId:      0,
			wantErrFunc: require.NoError,
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNodeGenerator(tt.nodeId)
			tt.wantErrFunc(t, err)
		})
	}
}

func Test_Generate(t *testing.T) {
	idmaker, err := NewNodeGenerator(1)
	require.NoError(t, err)
	// 校验生成的id是否重复
	idmap := make(map[int64]struct{}, 100000)
	for i := 0; i < 100000; i++ {
		id := idmaker.Generate().Int64()
		_, ok := idmap[id]
		require.False(t, ok)
		idmap[id] = struct{}{}
	}
}
