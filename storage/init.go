package storage

import (
	"fmt"

	"RamadhanLantern/config"
	"RamadhanLantern/storage/database"
	"RamadhanLantern/storage/kv"
	"RamadhanLantern/storage/redis"
)

//统一 init storage 层

var store kv.Store

func Init() error {
	switch config.Cfg.StorageBackend {
	case "postgres":
		if err := database.Init(); err != nil {
			return err
		}
		gormStore, err := kv.NewGormStore(database.DB())
		if err != nil {
			return err
		}
		store = gormStore

	case "redis":
		if err := redis.Init(); err != nil {
			return err
		}
		store = kv.NewRedisStore(redis.Client(), config.Cfg.RedisPrefix)

	default:
		return fmt.Errorf("unknown storage backend: %s", config.Cfg.StorageBackend)
	}

	return nil
}

// KV 返回已初始化的键值存储端口
func KV() kv.Store {
	if store == nil {
		panic("storage not init")
	}
	return store
}
