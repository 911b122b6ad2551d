package models

var ModelTypeRegistry = map[string]interface{}{
	"Agent":          Agent{},
	"Client":         Client{},
	"Property":       Property{},
	"PropertyAgent":  PropertyAgent{},
	"PropertyClient": PropertyClient{},
}
