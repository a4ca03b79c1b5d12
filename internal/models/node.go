package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NodeType is the content type (bundle) of a node
type NodeType string

const (
	NodeTypeArticle NodeType = "article"
	NodeTypePage    NodeType = "page"
)

// Node is a piece of site content
type Node struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UUID      string   `gorm:"type:varchar(36);uniqueIndex" json:"uuid"`
	Type      NodeType `gorm:"type:varchar(32);index:idx_nodes_type_published,priority:1" json:"type"`
	Title     string   `gorm:"type:varchar(255)" json:"title"`
	Body      string   `gorm:"type:text" json:"body"`
	Published bool     `gorm:"default:true;index:idx_nodes_type_published,priority:2" json:"published"`
}

// Bundle returns the content type used for breadcrumb selection
func (n *Node) Bundle() string {
	return string(n.Type)
}

// BeforeCreate assigns a UUID to new nodes
func (n *Node) BeforeCreate(tx *gorm.DB) error {
	if n.UUID == "" {
		n.UUID = uuid.New().String()
	}
	return nil
}

// ValidNodeType reports whether t is a known content type
func ValidNodeType(t string) bool {
	switch NodeType(t) {
	case NodeTypeArticle, NodeTypePage:
		return true
	}
	return false
}
