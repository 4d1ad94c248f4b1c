// @title           crudboard API
// @version         1.0
// @description     API documentation for Users, Posts, and Comments
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "crudboard_backend/internal/app"

func main() {
	app.Run()
}
