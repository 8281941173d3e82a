package capability

// Car is the default Vehicle.  It stores the state flag directly and
// updates it in place; both transitions are always permitted.
type Car struct {
	isOn bool
}

var _ Vehicle = (*Car)(nil)

// NewCar returns a Car whose state equals isOn.
func NewCar(isOn bool) *Car {
	return &Car{isOn: isOn}
}

func (c *Car) IsOn() bool { return c.isOn }

func (c *Car) SetOn(on bool) { c.isOn = on }

// Start turns the car on.  Idempotent.
func (c *Car) Start() { c.isOn = true }

// Stop turns the car off.  Idempotent.
func (c *Car) Stop() { c.isOn = false }
