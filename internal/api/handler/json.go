package handler

import (
	jsoniter "github.com/json-iterator/go"
)

// json é o codec usado por todos os handlers, compatível com a biblioteca
// padrão
var json = jsoniter.ConfigCompatibleWithStandardLibrary
