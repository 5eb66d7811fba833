package connection

// Connection names the backing store the basics app was configured for
type Connection interface {
	Name() string
}

type MySQL struct{}

func (MySQL) Name() string { return "MySQL" }

type MongoDB struct{}

func (MongoDB) Name() string { return "MongoDB" }

// New picks the implementation from the DATABASE setting; anything but "mysql" is MongoDB
func New(database string) Connection {
	if database == "mysql" {
		return MySQL{}
	}
	return MongoDB{}
}
