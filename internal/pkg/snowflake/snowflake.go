package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

const maxNode int64 = 1023

var ErrExceedNode = errors.New("node超出限制")

//go:generate mockgen -source=./snowflake.go -destination=./mocks/snowflake.mock.go -package=snowflakemocks -typed Generator
type Generator interface {
	Generate() ID
}

type ID int64

func (f ID) Int64() int64 {
	return int64(f)
}

// NodeGenerator 单节点的雪花 ID 生成器,nodeId 需要全局唯一
type NodeGenerator struct {
	node *snowflake.Node
}

func NewNodeGenerator(nodeId int64) (*NodeGenerator, error) {
	if nodeId < 0 || nodeId > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeId)
	}
	n, err := snowflake.NewNode(nodeId)
	if err != nil {
		return nil, err
	}
	return &NodeGenerator{node: n}, nil
}

func (g *NodeGenerator) Generate() ID {
	return ID(g.node.Generate())
}
