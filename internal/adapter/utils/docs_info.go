// @title           Action Brief API
// @version         1.0
// @description     This API turns uploaded documents into one-page action briefs and skills receipts, asynchronously.
// @termsOfService  http://swagger.io/terms/

// @contact.name    skillsfirst
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package utils

//run redis
//docker run -p 6379:6379 -d redis

//swagger init
//swag init -g cmd/api/main.go --parseDependency --parseInternal --dir ./ --output ./cmd/api/docs
