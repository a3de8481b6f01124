// cmd/main.go
package main

import (
	"go-bank-accounts/app"
)

// @title           Go-Bank Accounts API
// @version         1.0
// @description     Interest reporting, policy-checked withdrawals and multi-channel notifications.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
