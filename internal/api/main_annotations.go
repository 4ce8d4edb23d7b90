// @title           wordbook API
// @version         1.0
// @description     Languages and the words that belong to them. Failed mutations return 404 with an empty body.
// @BasePath        /
package api
