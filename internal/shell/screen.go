package shell

type Screen string

const (
	ScreenStart              Screen = "start"
	ScreenOrderDetails       Screen = "order_details"
	ScreenAcknowledgement    Screen = "acknowledgement"
	ScreenTicketAvailability Screen = "ticket_availability"
	ScreenVenueMap           Screen = "venue_map"
)

var screenTitles = map[Screen]string{
	ScreenStart:              "Welcome to the Ticket System!",
	ScreenOrderDetails:       "Finalize your order!",
	ScreenAcknowledgement:    "Ack",
	ScreenTicketAvailability: "These are the available ticket now",
	ScreenVenueMap:           "Choose the proper grandstand!",
}

func (s Screen) Title() string {
	return screenTitles[s]
}

// Router keeps the screen history. The start screen is always at the bottom.
type Router struct {
	stack []Screen
}

func NewRouter() *Router {
	return &Router{
		stack: []Screen{ScreenStart},
	}
}

func (r *Router) Current() Screen {
	return r.stack[len(r.stack)-1]
}

// Navigate opens s on top of the current screen. Opening the current screen again is a no-op.
func (r *Router) Navigate(s Screen) {
	if r.Current() == s {
		return
	}
	if s == ScreenStart {
		r.Home()
		return
	}
	r.stack = append(r.stack, s)
}

// Back closes the current screen and returns the one below it.
func (r *Router) Back() Screen {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return r.Current()
}

func (r *Router) Home() {
	r.stack = r.stack[:1]
}
