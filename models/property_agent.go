package models

// PropertyAgent links a property to an agent handling it.
// A property may have any number of agents and vice versa.
type PropertyAgent struct {
	PropertyID uint      `gorm:"primaryKey;autoIncrement:false"`
	AgentID    uint      `gorm:"primaryKey;autoIncrement:false"`
	Property   *Property `gorm:"foreignKey:PropertyID"`
	Agent      *Agent    `gorm:"foreignKey:AgentID"`
}
