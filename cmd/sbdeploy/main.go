// sbdeploy - provisions the Azure resources backing the shiftbase-sync function
package main

func main() {
	Execute()
}
