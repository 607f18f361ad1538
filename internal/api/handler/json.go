package handler

import jsoniter "github.com/json-iterator/go"

// json substitui encoding/json na serialização das respostas
var json = jsoniter.ConfigCompatibleWithStandardLibrary
