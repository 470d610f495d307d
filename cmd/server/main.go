package main

// @title           Kaard Farm Management API
// @version         1.0.0
// @description     Record-keeping API for a farm's crops, equipment, production and vehicles
// @BasePath        /
func main() {
	Execute()
}
