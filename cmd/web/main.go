// Command web serves the meu_delivery courier API.
package main

import "meu_delivery/internal/app"

func main() {
	app.Run()
}
