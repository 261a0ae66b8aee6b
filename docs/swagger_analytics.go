package docs

// @title           Taxi Analytics Service API
// @version         1.0
// @description     Analytics service for taxi trip data. Ingests sample or external trip datasets and serves overview, hourly and zone-level analytics for the dashboard.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3003
// @BasePath  /
