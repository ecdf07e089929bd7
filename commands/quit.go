package commands

type Quit struct {
}

func (cmd Quit) Execute(context Context, args string) {
	context.Exit()
}
